package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/isesword/errno-go-bridge/bridge"
	"github.com/isesword/errno-go-bridge/errno"
)

func main() {
	os.Exit(run())
}

func run() int {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "errnoctl",
		Short:         "errnoctl inspects the host errno convention and its bridge library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCatalogCmd(), newDecodeCmd(), newProbeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "errnoctl: %v\n", err)
		return 1
	}
	return 0
}

type catalogEntry struct {
	Name    string `json:"name" yaml:"name"`
	Errno   int32  `json:"errno" yaml:"errno"`
	Message string `json:"message" yaml:"message"`
}

func catalogEntries() []catalogEntry {
	codes := errno.Catalogue()
	out := make([]catalogEntry, 0, len(codes))
	for _, c := range codes {
		out = append(out, catalogEntry{Name: c.Name(), Errno: c.Errno(), Message: c.Error()})
	}
	return out
}

func newCatalogCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the mirrored host error catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalogEntries()
			switch format {
			case "table":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tERRNO\tMESSAGE")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Errno, e.Message)
				}
				return w.Flush()
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "yaml":
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(entries)
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json or yaml")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <value>",
		Short: "Interpret a raw host return value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(raw))
			return nil
		},
	}
}

// describe renders a raw host return value in the host convention: negative
// means an errno magnitude, anything else is a success payload.
func describe(raw int64) string {
	if raw >= 0 {
		return fmt.Sprintf("success (%d)", raw)
	}

	v, err := errno.CastInt32(raw)
	if err != nil {
		// Outside any plausible errno range; the conversion layer collapses
		// this to EINVAL, but the raw value is worth reporting.
		return fmt.Sprintf("out of errno range (%d), treated as %s", raw, errno.From(err).Name())
	}

	code := errno.FromErrno(v)
	if code.Name() == "" {
		return fmt.Sprintf("uncatalogued %s", code.Error())
	}
	return fmt.Sprintf("%s: %s", code.Name(), code.Error())
}

func newProbeCmd() *cobra.Command {
	var libPath string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Load the host bridge library and cross-check its error constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("loading bridge", "lib", libPath)
			b, err := bridge.LoadBridge(libPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ABI version: %d\n", b.AbiVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "MAX_ERRNO:   %d\n", b.MaxErrno())

			bad := 0
			for _, code := range errno.Catalogue() {
				p := b.ErrPtr(code)
				if !b.IsErr(p) {
					slog.Warn("ERR_PTR result not in error range", "code", code.Name())
					bad++
					continue
				}
				if got := b.PtrErr(p); got != int64(code.Errno()) {
					slog.Warn("round trip mismatch", "code", code.Name(), "got", got)
					bad++
					continue
				}
				slog.Debug("round trip ok", "code", code.Name(), "errno", code.Errno())
			}

			if bad > 0 {
				return fmt.Errorf("%d catalogue codes failed the host round trip", bad)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "all %d catalogue codes round-trip through the host\n", len(errno.Catalogue()))
			return nil
		},
	}
	cmd.Flags().StringVar(&libPath, "lib", "", "path to the bridge library (default: ERRNO_BRIDGE_LIB or executable directory)")
	return cmd
}

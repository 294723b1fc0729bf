// Package bridge loads the host runtime's errno helper library and exposes
// its pointer-error predicate and extractor to the typed layer in errno.
// The error-pointer encoding itself stays on the host side; this package
// only binds the functions that inspect it.
package bridge

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/isesword/errno-go-bridge/errno"
)

// Bridge implements the pointer codec the decoder needs.
var _ errno.PtrCodec = (*Bridge)(nil)

const libPathEnv = "ERRNO_BRIDGE_LIB"

// resolveLibPath picks the library path: explicit argument, then the
// ERRNO_BRIDGE_LIB environment variable, then the executable's directory.
func resolveLibPath(libPath string) (string, error) {
	if libPath == "" {
		libPath = os.Getenv(libPathEnv)
		if libPath == "" {
			exePath, err := os.Executable()
			if err != nil {
				return "", fmt.Errorf("failed to get executable path: %w", err)
			}
			libPath = filepath.Join(filepath.Dir(exePath), getLibName())
		}
	}

	if _, err := os.Stat(libPath); os.IsNotExist(err) {
		return "", fmt.Errorf("library not found: %s", libPath)
	}
	return libPath, nil
}

func getLibName() string {
	switch runtime.GOOS {
	case "windows":
		return "errno_bridge.dll"
	case "darwin":
		return "liberrno_bridge.dylib"
	default:
		return "liberrno_bridge.so"
	}
}

// verify checks the loaded library against the constants this build was
// compiled with. A MAX_ERRNO mismatch would invalidate the int16 narrowing
// everywhere, so loading fails outright.
func (b *Bridge) verify() error {
	if v := b.AbiVersion(); v != 1 {
		return fmt.Errorf("ABI version mismatch: expected 1, got %d", v)
	}
	if m := b.MaxErrno(); m != errno.MaxErrno {
		return fmt.Errorf("host MAX_ERRNO mismatch: expected %d, got %d", errno.MaxErrno, m)
	}
	return nil
}

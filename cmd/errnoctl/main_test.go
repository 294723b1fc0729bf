package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		raw  int64
		want string
	}{
		{0, "success (0)"},
		{42, "success (42)"},
		{-22, "EINVAL: invalid argument"},
		{-12, "ENOMEM: out of memory"},
		{-4000, "uncatalogued errno -4000"},
		{-(1 << 40), "out of errno range (-1099511627776), treated as EINVAL"},
	}

	for _, tt := range tests {
		if got := describe(tt.raw); got != tt.want {
			t.Errorf("describe(%d) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCatalogFormats(t *testing.T) {
	entries := catalogEntries()
	if len(entries) != 35 {
		t.Fatalf("expected 35 catalogue entries, got %d", len(entries))
	}
	if entries[0].Name != "EPERM" || entries[0].Errno != -1 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(entries); err != nil {
		t.Fatalf("json encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"EINVAL"`) {
		t.Error("json output missing EINVAL")
	}

	buf.Reset()
	if err := yaml.NewEncoder(&buf).Encode(entries); err != nil {
		t.Fatalf("yaml encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: EINVAL") {
		t.Error("yaml output missing EINVAL")
	}
}

func TestCatalogCmdUnknownFormat(t *testing.T) {
	cmd := newCatalogCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown format")
	}
}

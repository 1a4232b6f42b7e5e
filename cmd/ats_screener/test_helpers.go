package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// getBinaryPath returns the path to the ats_screener binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "ats_screener"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_screener ./cmd/ats_screener'", binaryPath)
	}

	return binaryPath
}

// resetFlags restores a command's flags to their defaults. In-process tests
// share the package-level flag state, so each one starts from a clean slate.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// setFlags applies flag values through the flag set so Changed tracking
// matches a real invocation.
func setFlags(t *testing.T, cmd *cobra.Command, kv map[string]string) {
	t.Helper()
	resetFlags(t, cmd)
	for name, value := range kv {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set flag %s: %v", name, err)
		}
	}
	t.Cleanup(func() { resetFlags(t, cmd) })
}

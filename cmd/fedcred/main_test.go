package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// A failing command must surface its error exactly once, through Execute's
// return value; cobra itself stays silent.
func TestExecuteReportsErrorOnce(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-config.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"request", "--config", missing})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if out.Len() != 0 {
		t.Errorf("cobra wrote output of its own, error would be reported twice:\n%s", out.String())
	}
}

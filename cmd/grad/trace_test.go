package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// TestTraceOutput runs the trace command against a buffer and checks
// that every named node appears with a gradient column.
func TestTraceOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	runTrace(cmd, nil)
	output := buf.String()

	for _, name := range []string{"x1", "x2", "w1", "w2", "b", "x1*w1", "x2*w2", "n", "out"} {
		if !strings.Contains(output, name) {
			t.Errorf("trace output missing node %q:\n%s", name, output)
		}
	}
	if !strings.Contains(output, "tanh") {
		t.Errorf("trace output missing tanh op:\n%s", output)
	}
	// The worked defaults put the output at ~0.707107.
	if !strings.Contains(output, "0.70710678118") {
		t.Errorf("trace output missing forward value:\n%s", output)
	}
}

// TestVersionOutput checks the version command prints the version string.
func TestVersionOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(buf.String(), version) {
		t.Errorf("version output = %q, want it to contain %q", buf.String(), version)
	}
}

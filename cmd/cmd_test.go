package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOutput(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "250,5,5", "#4169e1")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "#fa0505\tRed\t#ff0000\t") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "#4169e1\tRoyal Blue\t#4169e1\t0.0000" {
		t.Errorf("line 2 = %q", lines[1])
	}
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "#ffffff")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "rgb 255 255 255\n") || !strings.Contains(out, "lab 100.0000 ") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestDiffCommand(t *testing.T) {
	out, err := run(t, "diff", "#000000", "#000000")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if out != "0.0000\n" {
		t.Errorf("diff = %q", out)
	}

	if _, err := run(t, "diff", "#000000", "#00"); err == nil {
		t.Error("diff with a bad color did not fail")
	}
}

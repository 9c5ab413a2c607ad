package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	got := buf.String()

	flags := []string{"--output", "--config", "--workers", "--timeout", "--layout", "--renderer",
		"--font", "--page-size", "--orientation", "--margin", "--quiet", "--verbose", "--version"}
	for _, f := range flags {
		if !strings.Contains(got, f) {
			t.Errorf("usage missing %s", f)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	xml2pdf "github.com/alnah/go-xml2pdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fixtures and environment
// ---------------------------------------------------------------------------

const styledDoc = `<Root>
	<Text bold="true">Inventory</Text>
	<Table>
		<Row><Cell color="lightblue" bold="true">Item</Cell><Cell>Qty</Cell></Row>
		<Row><Cell>Widget</Cell><Cell alignment="right">4</Cell></Row>
	</Table>
</Root>`

const reportDoc = `<Report>
	<Title>Quarterly Sales</Title>
	<Table>
		<Header>Region</Header>
		<Header>Units</Header>
		<Row><Cell>North</Cell><Cell>120</Cell></Row>
	</Table>
</Report>`

const emptyTableDoc = `<Root><Table></Table></Root>`

// fixedNow returns a clock that advances one second per call.
func fixedNow() func() time.Time {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// testEnv returns an environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Now: time.Now, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

// writeFile writes content under dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
	return path
}

// assertPDFFile fails unless path holds a PDF.
func assertPDFFile(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("%s does not start with %%PDF-", path)
	}
}

// goFont returns the Go Regular font.
func goFont(t *testing.T) *xml2pdf.Font {
	t.Helper()
	f, err := xml2pdf.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	return f
}

// writeFontFile writes the Go Regular font under dir.
func writeFontFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("setup write font: %v", err)
	}
	return path
}

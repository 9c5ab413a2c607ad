package main

// Notes:
// - run: we test exit codes and user-facing output end to end with the
//   native PDF renderer. The chrome renderer needs a browser and is covered
//   by the library's integration tests.
// - hintFor: we test that each hinted error gets its hint.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	xml2pdf "github.com/alnah/go-xml2pdf"
	"github.com/alnah/go-xml2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestRun - Exit codes and output
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{"-h"}, env); code != ExitSuccess {
			t.Errorf("exit = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Usage: xml2pdf") {
			t.Errorf("stdout = %q, want usage", stdout)
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{"--version"}, env); code != ExitSuccess {
			t.Errorf("exit = %d, want %d", code, ExitSuccess)
		}
		if got, want := stdout.String(), "xml2pdf "+Version+"\n"; got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"--nope"}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "xml2pdf --help") {
			t.Errorf("stderr = %q, want help pointer", stderr)
		}
	})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := run(context.Background(), nil, env); code != ExitIO {
			t.Errorf("exit = %d, want %d", code, ExitIO)
		}
		if !strings.Contains(stderr.String(), "no input specified") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		missing := filepath.Join(t.TempDir(), "missing.xml")
		if code := run(context.Background(), []string{missing}, env); code != ExitIO {
			t.Errorf("exit = %d, want %d", code, ExitIO)
		}
	})

	t.Run("directory without xml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "readme.txt", "nothing")

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{dir}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "no XML files found") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("styled file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "inventory.xml", styledDoc)

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d", code, ExitSuccess)
		}
		out := filepath.Join(dir, "inventory.pdf")
		assertPDFFile(t, out)
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("report directory into output dir", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		writeFile(t, src, "q1.xml", reportDoc)
		writeFile(t, src, "2025/q2.xml", reportDoc)
		out := t.TempDir()

		env, stdout, _ := testEnv()
		args := []string{"--layout", "report", "-p", "a4", "--orientation", "landscape", "-w", "2", "-o", out, src}
		if code := run(context.Background(), args, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d", code, ExitSuccess)
		}
		assertPDFFile(t, filepath.Join(out, "q1.pdf"))
		assertPDFFile(t, filepath.Join(out, "2025", "q2.pdf"))
		if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
			t.Errorf("stdout = %q, want summary", stdout)
		}
	})

	t.Run("empty table fails with hint", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "empty.xml", emptyTableDoc)

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{in}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		got := stderr.String()
		for _, want := range []string{"FAILED " + in, "table has no rows or cells", "hint:", "1 conversion(s) failed"} {
			if !strings.Contains(got, want) {
				t.Errorf("stderr missing %q: %q", want, got)
			}
		}
	})

	t.Run("partial batch failure keeps good outputs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "good.xml", styledDoc)
		writeFile(t, dir, "bad.xml", "plain text")

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{dir}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		assertPDFFile(t, filepath.Join(dir, "good.pdf"))
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("invalid renderer", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", styledDoc)

		env, _, _ := testEnv()
		if code := run(context.Background(), []string{"--renderer", "latex", in}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("invalid margin", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", styledDoc)

		env, _, _ := testEnv()
		if code := run(context.Background(), []string{"--margin", "9", in}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("too many workers", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", styledDoc)

		env, _, _ := testEnv()
		args := []string{"-w", fmt.Sprint(xml2pdf.MaxPoolSize + 1), in}
		if code := run(context.Background(), args, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("bad font file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "a.xml", styledDoc)
		font := writeFile(t, dir, "broken.ttf", "not a font")

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"--font", font, in}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want font hint", stderr)
		}
	})

	t.Run("custom font", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "a.xml", `<Root><Table><Row><Cell font="custom">Łódź</Cell></Row></Table></Root>`)
		font := writeFontFile(t, dir)

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"--font", font, in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d; stderr: %s", code, ExitSuccess, stderr)
		}
		if strings.Contains(stderr.String(), "custom font requested") {
			t.Errorf("unexpected missing-font warning: %q", stderr)
		}
	})

	t.Run("missing custom font warns", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", `<Root><Text font="custom">Hello</Text></Root>`)

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "custom font requested but none set") {
			t.Errorf("stderr = %q, want warning", stderr)
		}
	})

	t.Run("quiet hides warnings and success lines", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", `<Root><Text font="custom">Hello</Text></Root>`)

		env, stdout, stderr := testEnv()
		if code := run(context.Background(), []string{"-q", in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d", code, ExitSuccess)
		}
		if stdout.Len() != 0 || stderr.Len() != 0 {
			t.Errorf("quiet run printed stdout=%q stderr=%q", stdout, stderr)
		}
	})

	t.Run("verbose logs debug", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "a.xml", styledDoc)

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"-v", in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "starting conversion") {
			t.Errorf("stderr = %q, want debug log", stderr)
		}
	})

	t.Run("config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "r.xml", reportDoc)
		out := filepath.Join(dir, "pdfs")
		cfgPath := writeFile(t, dir, "xml2pdf.yaml", "layout: report\noutput:\n  defaultDir: "+out+"\npage:\n  size: legal\n")

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"-c", cfgPath, in}, env); code != ExitSuccess {
			t.Fatalf("exit = %d, want %d; stderr: %s", code, ExitSuccess, stderr)
		}
		assertPDFFile(t, filepath.Join(out, "r.pdf"))
	})

	t.Run("config with unknown field", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "a.xml", styledDoc)
		cfgPath := writeFile(t, dir, "bad.yaml", "watermark: draft\n")

		env, _, _ := testEnv()
		if code := run(context.Background(), []string{"-c", cfgPath, in}, env); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHintFor - Error hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		renderer string
		want     string
	}{
		{"empty table", xml2pdf.ErrEmptyTable, "", "first Row"},
		{"invalid xml", xml2pdf.ErrInvalidXML, "", "well-formed"},
		{"font", xml2pdf.ErrInvalidFont, "", "TrueType"},
		{"output dir", ErrCreateOutputDir, "", "writable"},
		{"timeout with chrome", context.DeadlineExceeded, "chrome", "--renderer pdf"},
		{"timeout with pdf", context.DeadlineExceeded, "pdf", "--timeout"},
		{"config not found", config.ErrConfigNotFound, "", "--config"},
		{"batch", &batchError{failed: 1, first: xml2pdf.ErrEmptyTable}, "", ""},
		{"plain pdf generation", xml2pdf.ErrPDFGeneration, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err, tt.renderer, "")
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

//go:build integration

package render

// Notes:
// - Requires a local Chrome/Chromium, or ROD_BROWSER_BIN pointing at one.
//   Rod may download Chromium on first run otherwise.
// - One Chrome renderer is shared across subtests to launch the browser once.

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/style"
)

const integrationTimeout = 60 * time.Second

func TestChrome_Render_Integration(t *testing.T) {
	r := NewChrome(DefaultPage(), integrationTimeout)
	t.Cleanup(func() { _ = r.Close() })

	font, err := style.ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	styled := style.StyledCellPreset()
	styled.Font = font

	tests := []struct {
		name string
		doc  *document.Document
	}{
		{
			name: "empty document",
			doc:  &document.Document{},
		},
		{
			name: "report",
			doc: &document.Document{Elements: []document.Element{
				&document.Title{Text: "Report", Style: style.TitlePreset()},
				&document.Table{
					Columns:   1,
					MarginTop: document.TableMarginTop,
					Header:    []document.Cell{{Text: "Name", Style: style.HeaderCellPreset()}},
					Cells:     []document.Cell{{Text: "value", Style: style.BodyCellPreset()}},
				},
			}},
		},
		{
			name: "custom font",
			doc: &document.Document{Elements: []document.Element{
				&document.Table{
					Columns: 1,
					Header:  []document.Cell{{Text: "Styled", Style: styled}},
				},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout)
			defer cancel()

			out, err := Render(ctx, r, tt.doc)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if len(out) < 100 || string(out[:5]) != "%PDF-" {
				t.Errorf("output is not a PDF: %d bytes", len(out))
			}
		})
	}
}

func TestChrome_ExpiredDeadline_Integration(t *testing.T) {
	r := NewChrome(DefaultPage(), integrationTimeout)
	t.Cleanup(func() { _ = r.Close() })

	sess, err := r.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	defer sess.Close()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	sess.(*chromeSession).ctx = ctx

	if _, err := sess.Finalize(); err == nil {
		t.Fatal("Finalize() with an expired deadline succeeded")
	} else if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrPageCreate) {
		t.Errorf("Finalize() error = %v, want a deadline or page error", err)
	}
}

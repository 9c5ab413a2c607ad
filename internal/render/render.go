// Package render turns assembled documents into PDF bytes.
//
// A Renderer is a long-lived backend (for example a headless browser). Each
// conversion opens its own Session, feeds it the document elements in order
// and finalizes it exactly once. Render drives that lifecycle and always
// releases the session, whether or not an error occurred.
//
// Two backends are provided: PDF draws directly with gofpdf, Chrome prints an
// HTML rendition through headless Chrome (go-rod).
package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-xml2pdf/internal/document"
)

// Sentinel errors for rendering.
var (
	ErrSessionFinalized = errors.New("render session already finalized")
	ErrUnknownElement   = errors.New("unknown document element")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
)

// Renderer creates render sessions.
type Renderer interface {
	NewSession(ctx context.Context) (Session, error)
	Close() error
}

// Session accumulates elements for one output document.
// Close releases the session and is a no-op after Finalize.
type Session interface {
	AddTitle(t *document.Title) error
	AddParagraph(p *document.Paragraph) error
	AddTable(t *document.Table) error
	Finalize() ([]byte, error)
	Close() error
}

// Page size names.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation names.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// DefaultMargin is the page margin in inches when none is set.
const DefaultMargin = 0.5

// pointsPerInch converts inches to PDF points.
const pointsPerInch = 72.0

// Page describes the output page geometry.
type Page struct {
	Size        string  // letter, a4, legal
	Orientation string  // portrait, landscape
	Margin      float64 // inches, all sides
}

// DefaultPage returns US Letter portrait with half-inch margins.
func DefaultPage() Page {
	return Page{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: DefaultMargin}
}

// Dimensions returns the page width and height in inches, honouring the
// orientation. Unknown sizes fall back to letter.
func (p Page) Dimensions() (width, height float64) {
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		width, height = 8.27, 11.69
	case PageSizeLegal:
		width, height = 8.5, 14
	default:
		width, height = 8.5, 11
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height
}

// margin returns the margin in inches, defaulting when unset.
func (p Page) margin() float64 {
	if p.Margin <= 0 {
		return DefaultMargin
	}
	return p.Margin
}

// Render writes doc through a new session of r and returns the finalized
// bytes. The session is closed on every path.
func Render(ctx context.Context, r Renderer, doc *document.Document) (out []byte, err error) {
	sess, err := r.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			out, err = nil, fmt.Errorf("closing render session: %w", cerr)
		}
	}()

	for _, el := range doc.Elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := add(sess, el); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sess.Finalize()
}

// add dispatches one element to the matching session method.
func add(sess Session, el document.Element) error {
	switch v := el.(type) {
	case *document.Title:
		return sess.AddTitle(v)
	case *document.Paragraph:
		return sess.AddParagraph(v)
	case *document.Table:
		return sess.AddTable(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownElement, el)
	}
}

package xml2pdf

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/style"
)

// customFontPath finds elements that select the custom font.
var customFontPath = fmt.Sprintf(".//*[@font='%s']", style.CustomFontSelector)

// Builder renders a styled document from raw XML: an optional Text
// paragraph and an optional Table whose cells each read their own color,
// bold, alignment and font attributes.
//
// A Builder made by NewBuilder owns its Converter and must be closed.
// One made by Converter.NewBuilder shares the converter, and closing it
// leaves the converter open.
type Builder struct {
	xml   string
	font  *Font
	conv  *Converter
	owned bool
}

// NewBuilder creates a Builder for xml with its own Converter.
// An empty source fails with ErrNilSource before anything is parsed.
func NewBuilder(xml string, opts ...Option) (*Builder, error) {
	if xml == "" {
		return nil, ErrNilSource
	}
	conv, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{xml: xml, conv: conv, owned: true}, nil
}

// NewBuilder creates a Builder for xml that renders through c.
func (c *Converter) NewBuilder(xml string) (*Builder, error) {
	if xml == "" {
		return nil, ErrNilSource
	}
	return &Builder{xml: xml, conv: c}, nil
}

// SetCustomFont sets the font used by elements with font="custom".
// The font is read, never modified, during Build. Nil clears it.
func (b *Builder) SetCustomFont(f *Font) {
	b.font = f
}

// Build parses the source and renders it. Parse failures and documents
// without a root fail with ErrInvalidXML; other errors are returned as is.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := ParseXML([]byte(b.xml))
	if err != nil {
		return nil, err
	}
	root := doc.Root()

	if b.font == nil {
		if n := len(root.FindElements(customFontPath)); n > 0 {
			b.conv.logger.Warn("custom font requested but none set, using default font",
				zap.Int("elements", n))
		}
	}

	return b.conv.convert(ctx, root, document.StyledLayout(b.font))
}

// Close releases the Converter if the Builder owns it.
func (b *Builder) Close() error {
	if b.owned {
		return b.conv.Close()
	}
	return nil
}

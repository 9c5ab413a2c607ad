package xml2pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ render.Renderer = (*render.PDF)(nil)
	_ render.Renderer = (*render.Chrome)(nil)
)

// Converter turns XML documents into PDF bytes through one rendering
// backend. Create with NewConverter, convert with ConvertReport or a
// Builder, and Close when done.
type Converter struct {
	cfg      converterConfig
	renderer render.Renderer
	logger   *zap.Logger
}

// NewConverter creates a Converter with default configuration: the native
// PDF renderer, letter portrait pages and a 30 second timeout.
// Returns an error if the page settings or renderer name are invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.page.Validate(); err != nil {
		return nil, err
	}

	if !isValidRenderer(cfg.renderer) {
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidRenderer, cfg.renderer, RendererPDF, RendererChrome)
	}
	cfg.renderer = strings.ToLower(cfg.renderer)

	c := &Converter{cfg: cfg, logger: cfg.logger}
	if cfg.renderer == RendererChrome {
		c.renderer = render.NewChrome(cfg.page.page(), cfg.timeout)
	} else {
		c.renderer = render.NewPDF(cfg.page.page())
	}

	return c, nil
}

// ConvertReport renders a structured report: an optional Title and an
// optional Table of Header and Row/Cell elements. Only the title reads
// style attributes; table cells use fixed presets.
//
// Every failure, including a nil document, is wrapped in
// ErrDocumentProcessing with the cause kept for errors.Is.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ConvertReport(ctx context.Context, doc *etree.Document) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: internal error: %v", ErrDocumentProcessing, r)
		}
	}()

	if doc == nil || doc.Root() == nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentProcessing, ErrInvalidXML)
	}

	out, err = c.convert(ctx, doc.Root(), document.ReportLayout())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentProcessing, err)
	}
	return out, nil
}

// convert assembles root with l and renders it within the configured timeout.
func (c *Converter) convert(ctx context.Context, root *etree.Element, l document.Layout) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	doc, err := document.Assemble(root, l)
	if err != nil {
		return nil, err
	}
	c.logAssembled(root.Tag, doc)

	start := time.Now()
	out, err := render.Render(ctx, c.renderer, doc)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("rendered document",
		zap.String("renderer", c.cfg.renderer),
		zap.Int("bytes", len(out)),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// logAssembled reports the element mix and table geometry at debug level.
func (c *Converter) logAssembled(root string, doc *document.Document) {
	if ce := c.logger.Check(zap.DebugLevel, "assembled document"); ce != nil {
		fields := []zap.Field{zap.String("root", root), zap.Int("elements", len(doc.Elements))}
		for _, el := range doc.Elements {
			if t, ok := el.(*document.Table); ok {
				fields = append(fields,
					zap.Int("columns", t.Columns),
					zap.Int("headerCells", len(t.Header)),
					zap.Int("bodyRows", len(t.Rows())))
			}
		}
		ce.Write(fields...)
	}
}

// Close releases renderer resources (the headless browser, if any).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

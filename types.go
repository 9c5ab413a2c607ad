package xml2pdf

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-xml2pdf/internal/render"
)

// Page size constants.
const (
	PageSizeLetter = render.PageSizeLetter
	PageSizeA4     = render.PageSizeA4
	PageSizeLegal  = render.PageSizeLegal
)

// Orientation constants.
const (
	OrientationPortrait  = render.OrientationPortrait
	OrientationLandscape = render.OrientationLandscape
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = render.DefaultMargin
)

// Renderer names accepted by WithRenderer.
const (
	RendererPDF    = "pdf"    // native gofpdf backend, no external processes
	RendererChrome = "chrome" // headless Chrome via go-rod
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// page converts validated settings to the renderer geometry.
func (p *PageSettings) page() render.Page {
	if p == nil {
		return render.DefaultPage()
	}
	return render.Page{
		Size:        strings.ToLower(p.Size),
		Orientation: strings.ToLower(p.Orientation),
		Margin:      p.Margin,
	}
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// isValidRenderer checks if name is a known renderer (case-insensitive).
func isValidRenderer(name string) bool {
	switch strings.ToLower(name) {
	case RendererPDF, RendererChrome:
		return true
	}
	return false
}

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	renderer string
	timeout  time.Duration
	page     *PageSettings
	logger   *zap.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

func defaultConfig() converterConfig {
	return converterConfig{
		renderer: RendererPDF,
		timeout:  defaultTimeout,
		logger:   zap.NewNop(),
	}
}

// WithRenderer selects the rendering backend: RendererPDF (default) or
// RendererChrome. Unknown names make NewConverter fail with ErrInvalidRenderer.
func WithRenderer(name string) Option {
	return func(c *converterConfig) {
		c.renderer = name
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("xml2pdf: WithTimeout duration must be positive")
	}
	return func(c *converterConfig) {
		c.timeout = d
	}
}

// WithPage sets the page geometry. Nil keeps the defaults.
func WithPage(p *PageSettings) Option {
	return func(c *converterConfig) {
		c.page = p
	}
}

// WithLogger sets the logger for debug and warning output.
// Nil keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *converterConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

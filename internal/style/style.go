package style

import "fmt"

// Alignment is the horizontal alignment of text within its box.
type Alignment int

// Alignment values. AlignLeft is the zero value.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the CSS keyword for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors used by the built-in presets.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	LightGray = Color{211, 211, 211}
)

// Border describes a solid border drawn around a box.
// A zero Width means no border.
type Border struct {
	Width float64 // points
	Color Color
}

// None reports whether the border is not drawn.
func (b Border) None() bool {
	return b.Width <= 0
}

// Style is the resolved visual style of one logical element.
// Styles are values: copying one and changing a field never affects the
// original.
type Style struct {
	FontSize   float64 // points
	Bold       bool
	Color      Color  // text color
	Background *Color // nil means transparent
	Align      Alignment
	Padding    float64 // points, applied on all sides
	Border     Border
	Font       *Font // nil means the renderer's default font
}

// WithBackground returns a copy of s with the given background color.
func (s Style) WithBackground(c Color) Style {
	s.Background = &c
	return s
}

// Global defaults, applied when neither a role preset nor an attribute sets
// a property.
const (
	DefaultFontSize = 12.0
	DefaultPadding  = 0.0
)

// Defaults returns the global default style.
func Defaults() Style {
	return Style{
		FontSize: DefaultFontSize,
		Color:    Black,
		Align:    AlignLeft,
		Padding:  DefaultPadding,
	}
}

// Role preset values.
const (
	TitleFontSize  = 18.0
	HeaderFontSize = 12.0
	CellFontSize   = 11.0
	CellPadding    = 5.0
	CellBorder     = 0.5
)

// TitlePreset is the role default for a document title.
func TitlePreset() Style {
	s := Defaults()
	s.FontSize = TitleFontSize
	s.Align = AlignCenter
	return s
}

// TextPreset is the role default for a body paragraph.
func TextPreset() Style {
	return Defaults()
}

// HeaderCellPreset is the fixed style of a table header cell.
func HeaderCellPreset() Style {
	s := Defaults()
	s.FontSize = HeaderFontSize
	s.Bold = true
	s.Align = AlignCenter
	s.Padding = CellPadding
	return s.WithBackground(LightGray)
}

// BodyCellPreset is the fixed style of a table body cell in a report.
func BodyCellPreset() Style {
	s := Defaults()
	s.FontSize = CellFontSize
	s.Align = AlignLeft
	s.Padding = CellPadding
	s.Border = Border{Width: CellBorder, Color: Black}
	return s
}

// StyledCellPreset is the role default for an individually styled cell.
func StyledCellPreset() Style {
	return BodyCellPreset().WithBackground(White)
}

package style

import "github.com/beevik/etree"

// Attribute names recognized on styled elements.
const (
	AttrFontSize  = "fontSize"
	AttrBold      = "bold"
	AttrAlignment = "alignment"
	AttrColor     = "color"
	AttrFont      = "font"
)

// CustomFontSelector is the value of the font attribute that requests the
// caller-supplied font.
const CustomFontSelector = "custom"

// Resolver produces the style of one element for a given role.
type Resolver interface {
	Resolve(el *etree.Element) Style
}

// Preset is a fixed role style. Element attributes are ignored.
type Preset Style

// Resolve returns the preset unchanged.
func (p Preset) Resolve(*etree.Element) Style {
	return Style(p)
}

// Override applies one explicit attribute on top of a style.
type Override func(s Style, el *etree.Element) Style

// Attributed resolves a style from a role preset plus explicit attribute
// overrides, applied in order.
type Attributed struct {
	Base      Style
	Overrides []Override
}

// Resolve applies the overrides to a copy of Base.
func (a Attributed) Resolve(el *etree.Element) Style {
	s := a.Base
	if el == nil {
		return s
	}
	for _, o := range a.Overrides {
		s = o(s, el)
	}
	return s
}

// FontSizeOverride reads fontSize, keeping the current size as default.
func FontSizeOverride(s Style, el *etree.Element) Style {
	s.FontSize = FontSize(el.SelectAttr(AttrFontSize), s.FontSize)
	return s
}

// BoldOverride reads bold. A missing or non-"true" value clears bold.
func BoldOverride(s Style, el *etree.Element) Style {
	s.Bold = Bold(el.SelectAttr(AttrBold))
	return s
}

// AlignmentOverride reads alignment, keeping the current alignment as default.
func AlignmentOverride(s Style, el *etree.Element) Style {
	s.Align = AlignmentAttr(el.SelectAttr(AttrAlignment), s.Align)
	return s
}

// TextColorOverride reads color as the text color.
func TextColorOverride(s Style, el *etree.Element) Style {
	s.Color = ColorAttr(el.SelectAttr(AttrColor), s.Color)
	return s
}

// BackgroundOverride reads color as the background color. The current
// background, or white when transparent, is the default.
func BackgroundOverride(s Style, el *etree.Element) Style {
	def := White
	if s.Background != nil {
		def = *s.Background
	}
	return s.WithBackground(ColorAttr(el.SelectAttr(AttrColor), def))
}

// FontOverride returns an override that selects custom when the element asks
// for it with font="custom" and custom is not nil. Otherwise the default font
// is used.
func FontOverride(custom *Font) Override {
	return func(s Style, el *etree.Element) Style {
		if WantsCustomFont(el) && custom != nil {
			s.Font = custom
		} else {
			s.Font = nil
		}
		return s
	}
}

// WantsCustomFont reports whether el carries font="custom".
func WantsCustomFont(el *etree.Element) bool {
	if el == nil {
		return false
	}
	a := el.SelectAttr(AttrFont)
	return a != nil && a.Value == CustomFontSelector
}

package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// FontSize returns the attribute value parsed as a real number, or def when
// the attribute is absent or not a finite positive number.
func FontSize(attr *etree.Attr, def float64) float64 {
	return parseOr(attr, def, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return 0, strconv.ErrRange
		}
		return v, nil
	})
}

// Bold reports whether the attribute is present and equals "true",
// ignoring case. Any other value, including "1" and "yes", is false.
func Bold(attr *etree.Attr) bool {
	return attr != nil && strings.EqualFold(attr.Value, "true")
}

// ColorAttr returns the attribute value parsed as a web color, or def when the
// attribute is absent or cannot be parsed.
func ColorAttr(attr *etree.Attr, def Color) Color {
	return parseOr(attr, def, ParseColor)
}

// AlignmentAttr maps "center", "right", "left" and "justify" (any case) to
// their Alignment. Anything else, including an absent attribute, yields def.
func AlignmentAttr(attr *etree.Attr, def Alignment) Alignment {
	if attr == nil {
		return def
	}
	switch strings.ToLower(attr.Value) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	case "left":
		return AlignLeft
	case "justify":
		return AlignJustify
	default:
		return def
	}
}

// parseOr applies parse to the attribute value and falls back to def on a
// missing attribute or any parse error. The error never leaves this function.
func parseOr[T any](attr *etree.Attr, def T, parse func(string) (T, error)) T {
	if attr == nil {
		return def
	}
	v, err := parse(attr.Value)
	if err != nil {
		return def
	}
	return v
}

package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized color strings.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a web color: a CSS color name ("red", "DarkSlateGray"),
// a hex triplet ("#f00", "#ff0000", with or without the leading '#') or an
// rgb() function with integer or percent components ("rgb(255, 0, 0)",
// "rgb(100%,0%,0%)"). rgba() is accepted and its alpha dropped.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.Join(strings.Fields(s), ""))
	if name == "" {
		return Color{}, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}

	if strings.HasPrefix(name, "rgb(") && strings.HasSuffix(name, ")") {
		return parseRGBFunc(name[len("rgb(") : len(name)-1])
	}
	if strings.HasPrefix(name, "rgba(") && strings.HasSuffix(name, ")") {
		return parseRGBAFunc(name[len("rgba(") : len(name)-1])
	}

	if c, ok := colornames.Map[name]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}

	if c, ok := parseHex(strings.TrimPrefix(name, "#")); ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// parseHex parses 3 or 6 hex digits.
func parseHex(h string) (Color, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// parseRGBFunc parses the comma-separated arguments of rgb().
// Out-of-range components are clamped, as browsers do.
func parseRGBFunc(args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("%w: rgb() takes 3 components", ErrInvalidColor)
	}
	var comps [3]uint8
	for i, p := range parts {
		v, err := parseComponent(p)
		if err != nil {
			return Color{}, err
		}
		comps[i] = v
	}
	return Color{R: comps[0], G: comps[1], B: comps[2]}, nil
}

// parseRGBAFunc parses rgba() arguments. The alpha must be numeric but is
// discarded since Color is opaque.
func parseRGBAFunc(args string) (Color, error) {
	i := strings.LastIndex(args, ",")
	if i < 0 {
		return Color{}, fmt.Errorf("%w: rgba() takes 4 components", ErrInvalidColor)
	}
	alpha := strings.TrimSuffix(args[i+1:], "%")
	if _, err := strconv.ParseFloat(alpha, 64); err != nil {
		return Color{}, fmt.Errorf("%w: alpha %q", ErrInvalidColor, alpha)
	}
	return parseRGBFunc(args[:i])
}

func parseComponent(p string) (uint8, error) {
	scale := 1.0
	if strings.HasSuffix(p, "%") {
		p = strings.TrimSuffix(p, "%")
		scale = 255.0 / 100.0
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: component %q", ErrInvalidColor, p)
	}
	v *= scale
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	return uint8(v + 0.5), nil
}

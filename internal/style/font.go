package style

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/image/font/sfnt"
)

// ErrInvalidFont is returned when font data is not a usable TrueType or
// OpenType font.
var ErrInvalidFont = errors.New("invalid font")

// Font is a caller-supplied TrueType font. It is shared by reference between
// the caller and every element that selects it; renderers only read it.
type Font struct {
	Family string // sanitized family name, safe as a PDF or CSS font name
	Data   []byte // raw font file
}

// unsafeFamilyChars matches characters not allowed in a registered family name.
var unsafeFamilyChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// fallbackFamily names fonts whose name table has no usable family.
const fallbackFamily = "CustomFont"

// ParseFont validates data as a font file and reads its family name.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidFont)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	if f.NumGlyphs() == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidFont)
	}

	family := fallbackFamily
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		if clean := unsafeFamilyChars.ReplaceAllString(name, ""); clean != "" {
			family = clean
		}
	}

	return &Font{Family: family, Data: data}, nil
}

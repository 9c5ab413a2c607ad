package render

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// winAnsiReplacement stands in for runes the core PDF fonts cannot show.
const winAnsiReplacement = '?'

// toWinAnsi encodes s as Windows-1252, the encoding gofpdf expects for the
// core (non-embedded) fonts. Runes outside the code page become '?'.
func toWinAnsi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(winAnsiReplacement)
	}
	return b.String()
}

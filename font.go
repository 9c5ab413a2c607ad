package xml2pdf

import (
	"fmt"
	"os"

	"github.com/alnah/go-xml2pdf/internal/style"
)

// Font is a TrueType font supplied by the caller. Elements select it with
// font="custom".
type Font = style.Font

// LoadFont reads and validates a TrueType font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidFont, path, err)
	}
	return ParseFont(data)
}

// ParseFont validates TrueType data and reads its family name.
func ParseFont(data []byte) (*Font, error) {
	return style.ParseFont(data)
}

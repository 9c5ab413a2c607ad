// Package document assembles logical document elements from an XML tree.
//
// A Document is an ordered list of elements (Title, Paragraph, Table) whose
// styles are fully resolved. Rendering is done elsewhere: this package never
// measures text or paginates.
package document

import "github.com/alnah/go-xml2pdf/internal/style"

// Element is a logical document node ready for rendering.
type Element interface {
	element()
}

// Title is the document heading.
type Title struct {
	Text  string
	Style style.Style
}

// Paragraph is a block of body text.
type Paragraph struct {
	Text  string
	Style style.Style
}

// Cell is one table cell.
type Cell struct {
	Text  string
	Style style.Style
}

// Table layout constants.
const (
	TableWidthPercent = 100.0
	TableMarginTop    = 10.0 // points
)

// Table is a grid of cells with a fixed column count.
//
// Cells are stored in row-major order and wrap every Columns cells, so a
// source row with more or fewer cells than the first one flows into the next
// grid row instead of being rejected.
type Table struct {
	Columns   int
	Header    []Cell
	Cells     []Cell
	MarginTop float64 // points
}

// HeaderRows returns the header cells split into grid rows.
func (t *Table) HeaderRows() [][]Cell {
	return chunk(t.Header, t.Columns)
}

// Rows returns the body cells split into grid rows. The last row may be
// shorter than Columns.
func (t *Table) Rows() [][]Cell {
	return chunk(t.Cells, t.Columns)
}

func chunk(cells []Cell, n int) [][]Cell {
	if n <= 0 || len(cells) == 0 {
		return nil
	}
	rows := make([][]Cell, 0, (len(cells)+n-1)/n)
	for start := 0; start < len(cells); start += n {
		end := min(start+n, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

func (*Title) element()     {}
func (*Paragraph) element() {}
func (*Table) element()     {}

// Document is the assembled, renderer-independent document.
type Document struct {
	Elements []Element
}

// Empty reports whether the document has no elements.
func (d *Document) Empty() bool {
	return len(d.Elements) == 0
}

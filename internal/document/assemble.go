package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/alnah/go-xml2pdf/internal/style"
)

// Element names of the input grammar.
const (
	TagTitle  = "Title"
	TagText   = "Text"
	TagTable  = "Table"
	TagHeader = "Header"
	TagRow    = "Row"
	TagCell   = "Cell"
)

// Sentinel errors for assembly.
var (
	ErrNoRoot     = errors.New("document has no root element")
	ErrEmptyTable = errors.New("table has no rows or cells")
)

// Layout selects the style resolver for each element role. A nil resolver
// removes the role from the grammar: its elements are ignored.
type Layout struct {
	Title  style.Resolver
	Text   style.Resolver
	Header style.Resolver
	Cell   style.Resolver
}

// ReportLayout styles a titled report: the title is attribute driven while
// header and body cells use fixed presets.
func ReportLayout() Layout {
	return Layout{
		Title: style.Attributed{
			Base: style.TitlePreset(),
			Overrides: []style.Override{
				style.FontSizeOverride,
				style.AlignmentOverride,
				style.BoldOverride,
				style.TextColorOverride,
			},
		},
		Header: style.Preset(style.HeaderCellPreset()),
		Cell:   style.Preset(style.BodyCellPreset()),
	}
}

// StyledLayout styles a text paragraph and a table whose cells each resolve
// their own background, weight, alignment and font. custom may be nil.
func StyledLayout(custom *style.Font) Layout {
	font := style.FontOverride(custom)
	return Layout{
		Text: style.Attributed{
			Base:      style.TextPreset(),
			Overrides: []style.Override{style.BoldOverride, font},
		},
		Cell: style.Attributed{
			Base: style.StyledCellPreset(),
			Overrides: []style.Override{
				style.BackgroundOverride,
				style.BoldOverride,
				style.AlignmentOverride,
				font,
			},
		},
	}
}

// Assemble builds a Document from root using the resolvers in l.
// Elements are emitted in a fixed order: Title, Text, Table.
func Assemble(root *etree.Element, l Layout) (*Document, error) {
	if root == nil {
		return nil, ErrNoRoot
	}

	doc := &Document{}

	if el := root.SelectElement(TagTitle); el != nil && l.Title != nil {
		doc.Elements = append(doc.Elements, &Title{
			Text:  TextContent(el),
			Style: l.Title.Resolve(el),
		})
	}

	if el := root.SelectElement(TagText); el != nil && l.Text != nil {
		doc.Elements = append(doc.Elements, &Paragraph{
			Text:  TextContent(el),
			Style: l.Text.Resolve(el),
		})
	}

	if el := root.SelectElement(TagTable); el != nil && l.Cell != nil {
		table, err := assembleTable(el, l)
		if err != nil {
			return nil, err
		}
		doc.Elements = append(doc.Elements, table)
	}

	return doc, nil
}

// assembleTable sizes the grid from the first row and collects cells.
func assembleTable(el *etree.Element, l Layout) (*Table, error) {
	rows := el.SelectElements(TagRow)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no %s elements", ErrEmptyTable, TagRow)
	}
	columns := len(rows[0].SelectElements(TagCell))
	if columns == 0 {
		return nil, fmt.Errorf("%w: first %s has no %s elements", ErrEmptyTable, TagRow, TagCell)
	}

	t := &Table{Columns: columns, MarginTop: TableMarginTop}

	if l.Header != nil {
		for _, h := range el.SelectElements(TagHeader) {
			t.Header = append(t.Header, Cell{Text: TextContent(h), Style: l.Header.Resolve(h)})
		}
	}

	for _, row := range rows {
		for _, c := range row.SelectElements(TagCell) {
			t.Cells = append(t.Cells, Cell{Text: TextContent(c), Style: l.Cell.Resolve(c)})
		}
	}

	return t, nil
}

// TextContent concatenates all character data below el, in document order.
func TextContent(el *etree.Element) string {
	var b strings.Builder
	collectText(el, &b)
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch v := tok.(type) {
		case *etree.CharData:
			b.WriteString(v.Data)
		case *etree.Element:
			collectText(v, b)
		}
	}
}

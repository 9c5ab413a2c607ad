package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/style"
)

// cssFontStack is the default font for the HTML rendition; it matches the
// Helvetica core font used by the PDF backend.
const cssFontStack = `Helvetica, Arial, sans-serif`

// htmlDoc is an HTML rendition of a document, built as a node tree and
// serialized with golang.org/x/net/html so all text is escaped.
type htmlDoc struct {
	root  *html.Node
	head  *html.Node
	body  *html.Node
	css   strings.Builder
	fonts map[*style.Font]string
}

func newHTMLDoc(page Page) *htmlDoc {
	d := &htmlDoc{fonts: make(map[*style.Font]string)}

	d.root = &html.Node{Type: html.DocumentNode}
	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlEl := elem(atom.Html, "")
	d.root.AppendChild(htmlEl)

	d.head = elem(atom.Head, "")
	htmlEl.AppendChild(d.head)
	meta := elem(atom.Meta, "")
	meta.Attr = append(meta.Attr, html.Attribute{Key: "charset", Val: "utf-8"})
	d.head.AppendChild(meta)

	d.body = elem(atom.Body, "margin: 0; font-family: "+cssFontStack+";")
	htmlEl.AppendChild(d.body)

	w, h := page.Dimensions()
	fmt.Fprintf(&d.css, "@page { size: %.2fin %.2fin; margin: 0; }\n", w, h)
	return d
}

// addBlock appends a heading or paragraph.
func (d *htmlDoc) addBlock(a atom.Atom, text string, st style.Style) {
	n := elem(a, d.blockCSS(st)+fmt.Sprintf(" margin: 0 0 %.1fpt 0;", paragraphSpacing))
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	d.body.AppendChild(n)
}

// addTable appends a full-width table. Header rows go in <thead> so Chrome
// repeats them on every printed page.
func (d *htmlDoc) addTable(t *document.Table) {
	table := elem(atom.Table, fmt.Sprintf(
		"width: %.0f%%; margin-top: %.1fpt; border-collapse: collapse; table-layout: fixed;",
		document.TableWidthPercent, t.MarginTop))

	if rows := t.HeaderRows(); len(rows) > 0 {
		thead := elem(atom.Thead, "")
		for _, row := range rows {
			thead.AppendChild(d.row(atom.Th, row))
		}
		table.AppendChild(thead)
	}

	tbody := elem(atom.Tbody, "")
	for _, row := range t.Rows() {
		tbody.AppendChild(d.row(atom.Td, row))
	}
	table.AppendChild(tbody)

	d.body.AppendChild(table)
}

func (d *htmlDoc) row(cell atom.Atom, cells []document.Cell) *html.Node {
	tr := elem(atom.Tr, "")
	for _, c := range cells {
		td := elem(cell, d.blockCSS(c.Style)+" vertical-align: top;")
		td.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text})
		tr.AppendChild(td)
	}
	return tr
}

// blockCSS renders st as inline CSS declarations.
func (d *htmlDoc) blockCSS(st style.Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-size: %.1fpt; color: %s; text-align: %s; white-space: pre-line;",
		st.FontSize, st.Color.Hex(), st.Align)
	if st.Bold {
		b.WriteString(" font-weight: bold;")
	} else {
		b.WriteString(" font-weight: normal;")
	}
	if st.Font != nil {
		fmt.Fprintf(&b, " font-family: %q, %s;", d.fontFace(st.Font), cssFontStack)
	}
	if st.Background != nil {
		fmt.Fprintf(&b, " background-color: %s;", st.Background.Hex())
	}
	if st.Padding > 0 {
		fmt.Fprintf(&b, " padding: %.1fpt;", st.Padding)
	}
	if !st.Border.None() {
		fmt.Fprintf(&b, " border: %.1fpt solid %s;", st.Border.Width, st.Border.Color.Hex())
	} else {
		b.WriteString(" border: none;")
	}
	return b.String()
}

// fontFace declares f once as an embedded @font-face and returns its name.
func (d *htmlDoc) fontFace(f *style.Font) string {
	if name, ok := d.fonts[f]; ok {
		return name
	}
	name := fmt.Sprintf("xf%d%s", len(d.fonts), f.Family)
	fmt.Fprintf(&d.css, "@font-face { font-family: %q; src: url(data:font/ttf;base64,%s); }\n",
		name, base64.StdEncoding.EncodeToString(f.Data))
	d.fonts[f] = name
	return name
}

// String serializes the document with its stylesheet.
func (d *htmlDoc) String() (string, error) {
	styleEl := elem(atom.Style, "")
	styleEl.AppendChild(&html.Node{Type: html.TextNode, Data: d.css.String()})
	d.head.AppendChild(styleEl)
	defer d.head.RemoveChild(styleEl)

	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

// elem creates an element node with an optional inline style.
func elem(a atom.Atom, css string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if css != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
	}
	return n
}

package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/style"
)

// Layout constants for the gofpdf backend, in points.
const (
	defaultFontFamily = "Helvetica"
	lineHeightFactor  = 1.2
	paragraphSpacing  = 4.0
	pdfCreator        = "go-xml2pdf"
)

// Compile-time interface checks.
var (
	_ Renderer = (*PDF)(nil)
	_ Session  = (*pdfSession)(nil)
)

// PDF renders documents natively with gofpdf. It holds no external
// resources, so sessions are cheap and Close is a no-op.
type PDF struct {
	page Page
}

// NewPDF creates a gofpdf backend for the given page geometry.
func NewPDF(page Page) *PDF {
	return &PDF{page: page}
}

// NewSession starts a new one-page document.
func (r *PDF) NewSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w, h := r.page.Dimensions()
	m := r.page.margin() * pointsPerInch

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P", // Dimensions already applied the orientation
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w * pointsPerInch, Ht: h * pointsPerInch},
	})
	pdf.SetCreator(pdfCreator, true)
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, m)
	pdf.SetCellMargin(0)
	pdf.AddPage()
	pdf.SetFont(defaultFontFamily, "", style.DefaultFontSize)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	return &pdfSession{pdf: pdf, margin: m, fonts: make(map[*style.Font]string)}, nil
}

// Close is a no-op: the backend owns no resources.
func (r *PDF) Close() error {
	return nil
}

// pdfSession draws one document. It is not safe for concurrent use.
type pdfSession struct {
	pdf    *gofpdf.Fpdf
	margin float64
	fonts  map[*style.Font]string // registered custom fonts -> family key
	done   bool
	font   *style.Font // font of the last applied style
}

// AddTitle draws the title block.
func (s *pdfSession) AddTitle(t *document.Title) error {
	return s.addBlock(t.Text, t.Style)
}

// AddParagraph draws a body paragraph.
func (s *pdfSession) AddParagraph(p *document.Paragraph) error {
	return s.addBlock(p.Text, p.Style)
}

// addBlock wraps text across the content width and lets gofpdf break pages.
func (s *pdfSession) addBlock(text string, st style.Style) error {
	if s.done {
		return ErrSessionFinalized
	}
	s.apply(st)

	lineH := st.FontSize * lineHeightFactor
	width := s.contentWidth()
	lines := wrapText(text, width, s.measure)
	x := s.pdf.GetX()
	for i, line := range lines {
		s.drawLine(line, x, s.pdf.GetY(), width, lineH, st, i == len(lines)-1)
		s.pdf.SetXY(x, s.pdf.GetY()+lineH)
	}
	s.pdf.Ln(paragraphSpacing)

	return s.check()
}

// AddTable draws the table with equal column widths. Header rows are
// repeated at the top of every page the table continues on.
func (s *pdfSession) AddTable(t *document.Table) error {
	if s.done {
		return ErrSessionFinalized
	}
	if t.Columns <= 0 {
		return fmt.Errorf("%w: table has %d columns", ErrPDFGeneration, t.Columns)
	}

	// Rows are measured up front, so pages are broken here, not by gofpdf.
	s.pdf.SetAutoPageBreak(false, s.margin)
	defer s.pdf.SetAutoPageBreak(true, s.margin)

	s.pdf.Ln(t.MarginTop)

	colW := s.contentWidth() * document.TableWidthPercent / 100 / float64(t.Columns)
	header := t.HeaderRows()
	for _, row := range header {
		s.drawRow(row, colW, nil)
	}
	for _, row := range t.Rows() {
		s.drawRow(row, colW, header)
	}

	return s.check()
}

// drawRow draws one grid row, starting a new page first when it would cross
// the bottom margin. repeat is drawn at the top of that new page.
func (s *pdfSession) drawRow(row []document.Cell, colW float64, repeat [][]document.Cell) {
	h := s.rowHeight(row, colW)

	_, pageH := s.pdf.GetPageSize()
	y := s.pdf.GetY()
	if y+h > pageH-s.margin && y > s.margin {
		s.pdf.AddPage()
		for _, r := range repeat {
			s.drawRow(r, colW, nil)
		}
		y = s.pdf.GetY()
	}

	left, _, _, _ := s.pdf.GetMargins()
	for i, c := range row {
		s.drawCell(c, left+float64(i)*colW, y, colW, h)
	}
	s.pdf.SetXY(left, y+h)
}

// rowHeight is the height of the tallest cell in the row.
func (s *pdfSession) rowHeight(row []document.Cell, colW float64) float64 {
	var h float64
	for _, c := range row {
		s.apply(c.Style)
		inner := colW - 2*c.Style.Padding
		n := len(wrapText(c.Text, inner, s.measure))
		h = max(h, float64(n)*c.Style.FontSize*lineHeightFactor+2*c.Style.Padding)
	}
	return h
}

// drawCell paints background, border and padded text of one cell.
func (s *pdfSession) drawCell(c document.Cell, x, y, w, h float64) {
	st := c.Style
	if st.Background != nil {
		bg := *st.Background
		s.pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		s.pdf.Rect(x, y, w, h, "F")
	}
	if !st.Border.None() {
		bc := st.Border.Color
		s.pdf.SetDrawColor(int(bc.R), int(bc.G), int(bc.B))
		s.pdf.SetLineWidth(st.Border.Width)
		s.pdf.Rect(x, y, w, h, "D")
	}

	s.apply(st)
	lineH := st.FontSize * lineHeightFactor
	inner := w - 2*st.Padding
	lines := wrapText(c.Text, inner, s.measure)
	for i, line := range lines {
		s.drawLine(line, x+st.Padding, y+st.Padding+float64(i)*lineH, inner, lineH, st, i == len(lines)-1)
	}
}

// drawLine writes one wrapped line at (x, y). Justified lines other than the
// last one spread their words over the full width.
func (s *pdfSession) drawLine(line string, x, y, width, lineH float64, st style.Style, last bool) {
	words := strings.Fields(line)
	if st.Align == style.AlignJustify && !last && len(words) > 1 {
		var used float64
		for _, w := range words {
			used += s.measure(w)
		}
		gap := (width - used) / float64(len(words)-1)
		cx := x
		s.pdf.SetXY(x, y)
		for _, w := range words {
			ww := s.measure(w)
			s.pdf.SetX(cx)
			s.pdf.CellFormat(ww, lineH, s.encode(w), "", 0, "L", false, 0, "")
			cx += ww + gap
		}
		return
	}

	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(width, lineH, s.encode(line), "", 0, cellAlign(st.Align), false, 0, "")
}

// apply selects font, weight, size and text color for st.
func (s *pdfSession) apply(st style.Style) {
	family, weight := defaultFontFamily, ""
	if st.Bold {
		weight = "B"
	}
	if st.Font != nil {
		family = s.registerFont(st.Font)
	}
	s.font = st.Font
	s.pdf.SetFont(family, weight, st.FontSize)
	s.pdf.SetTextColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
}

// registerFont embeds f once per session for both regular and bold text.
// A single font file has no bold face, so bold text uses the same outlines.
func (s *pdfSession) registerFont(f *style.Font) string {
	if key, ok := s.fonts[f]; ok {
		return key
	}
	key := fmt.Sprintf("xf%d%s", len(s.fonts), f.Family)
	s.pdf.AddUTF8FontFromBytes(key, "", f.Data)
	s.pdf.AddUTF8FontFromBytes(key, "B", f.Data)
	s.fonts[f] = key
	return key
}

// encode converts text to the byte form the current font expects.
func (s *pdfSession) encode(text string) string {
	if s.font != nil {
		return text
	}
	return toWinAnsi(text)
}

// measure returns the width of text in the current font.
func (s *pdfSession) measure(text string) float64 {
	return s.pdf.GetStringWidth(s.encode(text))
}

func (s *pdfSession) contentWidth() float64 {
	pageW, _ := s.pdf.GetPageSize()
	left, _, right, _ := s.pdf.GetMargins()
	return pageW - left - right
}

// check surfaces the first error gofpdf recorded.
func (s *pdfSession) check() error {
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// Finalize closes the document and returns the PDF bytes.
func (s *pdfSession) Finalize() ([]byte, error) {
	if s.done {
		return nil, ErrSessionFinalized
	}
	s.done = true

	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// Close discards an unfinished document.
func (s *pdfSession) Close() error {
	s.done = true
	return nil
}

// cellAlign maps an alignment to gofpdf's CellFormat codes.
func cellAlign(a style.Alignment) string {
	switch a {
	case style.AlignCenter:
		return "C"
	case style.AlignRight:
		return "R"
	default:
		return "L"
	}
}

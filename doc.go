// Package xml2pdf converts declarative XML document descriptions to PDF.
//
// # Quick Start
//
// Build a styled document from raw XML and close the builder when done:
//
//	b, err := xml2pdf.NewBuilder(`<Root>
//	    <Text bold="true">Inventory</Text>
//	    <Table>
//	        <Row><Cell color="lightblue" alignment="center">Item</Cell></Row>
//	    </Table>
//	</Root>`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	pdf, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Document Grammar
//
// Two layouts read the same element names:
//
//   - Report (Converter.ConvertReport): Title with fontSize, bold, alignment
//     and color attributes, then a Table of Header cells and Row/Cell body
//     cells. Table cells use fixed styles.
//   - Styled (Builder): Text with bold and font attributes, then a Table whose
//     every Cell reads its own color (background), bold, alignment and font.
//
// The column count of a table is the cell count of its first Row. A Table
// without rows, or whose first row has no cells, fails with ErrEmptyTable.
// Malformed attribute values never fail: they fall back to the defaults.
//
// # Custom Fonts
//
// Elements with font="custom" use a caller-supplied TrueType font:
//
//	font, err := xml2pdf.LoadFont("fonts/Inter.ttf")
//	b.SetCustomFont(font)
//
// Without one they silently use the default font.
//
// # Renderers
//
// The default renderer draws PDF natively with gofpdf. WithRenderer selects
// headless Chrome instead, which prints an HTML rendition:
//
//	conv, err := xml2pdf.NewConverter(
//	    xml2pdf.WithRenderer(xml2pdf.RendererChrome),
//	    xml2pdf.WithTimeout(2 * time.Minute),
//	    xml2pdf.WithPage(&xml2pdf.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.5}),
//	)
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to manage multiple renderers:
//
//	pool := xml2pdf.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire(ctx)
//	defer pool.Release(conv)
//	pdf, err := conv.ConvertReport(ctx, doc)
//
// # Browser Requirements
//
// The Chrome renderer requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package xml2pdf

package xml2pdf_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alnah/go-xml2pdf"
)

// Example builds a styled table with the native PDF renderer.
func Example() {
	b, err := xml2pdf.NewBuilder(`<Root>
	<Text bold="true">Inventory</Text>
	<Table>
		<Row><Cell color="lightgray" bold="true">Item</Cell><Cell color="lightgray" bold="true">Qty</Cell></Row>
		<Row><Cell>Widget</Cell><Cell alignment="right">4</Cell></Row>
	</Table>
</Root>`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer b.Close()

	pdf, err := b.Build(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bytes.HasPrefix(pdf, []byte("%PDF-")))
	// Output: true
}

// ExampleConverter_ConvertReport renders a titled report table.
func ExampleConverter_ConvertReport() {
	conv, err := xml2pdf.NewConverter(xml2pdf.WithPage(&xml2pdf.PageSettings{
		Size:        xml2pdf.PageSizeA4,
		Orientation: xml2pdf.OrientationPortrait,
		Margin:      0.75,
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	doc, err := xml2pdf.ParseXML([]byte(`<Report>
	<Title fontSize="20" color="#003366">Monthly Figures</Title>
	<Table>
		<Header>Month</Header><Header>Total</Header>
		<Row><Cell>January</Cell><Cell>42</Cell></Row>
	</Table>
</Report>`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pdf, err := conv.ConvertReport(context.Background(), doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bytes.HasPrefix(pdf, []byte("%PDF-")))
	// Output: true
}

// ExampleNewBuilder_emptySource shows the error for a missing source.
func ExampleNewBuilder_emptySource() {
	_, err := xml2pdf.NewBuilder("")
	fmt.Println(err)
	// Output: XML source cannot be empty
}

// ExampleConverter_ConvertReport_emptyTable shows how table errors are wrapped.
func ExampleConverter_ConvertReport_emptyTable() {
	conv, err := xml2pdf.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	doc, _ := xml2pdf.ParseXML([]byte(`<Report><Table/></Report>`))
	_, err = conv.ConvertReport(context.Background(), doc)
	fmt.Println(err)
	// Output: error processing XML document: table has no rows or cells: no Row elements
}

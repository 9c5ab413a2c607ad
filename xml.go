package xml2pdf

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ParseXML parses data into an element tree. Unparseable content, documents
// without exactly one root element and text outside the root fail with
// ErrInvalidXML.
func ParseXML(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	if err := checkDocumentLevel(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkDocumentLevel enforces the well-formedness rules etree leaves to the
// caller: one root element and nothing but markup or whitespace around it.
func checkDocumentLevel(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("%w: text outside the root element", ErrInvalidXML)
			}
		}
	}
	switch roots {
	case 0:
		return fmt.Errorf("%w: no root element", ErrInvalidXML)
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: %d root elements", ErrInvalidXML, roots)
	}
}

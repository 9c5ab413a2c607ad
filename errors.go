package xml2pdf

import (
	"errors"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/render"
	"github.com/alnah/go-xml2pdf/internal/style"
)

// Sentinel errors for library operations.
var (
	ErrNilSource          = errors.New("XML source cannot be empty")
	ErrInvalidXML         = errors.New("the provided XML content is invalid or empty")
	ErrDocumentProcessing = errors.New("error processing XML document")
	ErrEmptyTable         = document.ErrEmptyTable
	ErrInvalidFont        = style.ErrInvalidFont

	// Renderer errors.
	ErrInvalidRenderer = errors.New("invalid renderer")
	ErrPDFGeneration   = render.ErrPDFGeneration
	ErrBrowserConnect  = render.ErrBrowserConnect
	ErrPageCreate      = render.ErrPageCreate
	ErrPageLoad        = render.ErrPageLoad

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)

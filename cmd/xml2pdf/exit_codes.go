package main

import (
	"errors"
	"os"

	xml2pdf "github.com/alnah/go-xml2pdf"
	"github.com/alnah/go-xml2pdf/internal/config"
)

// Exit codes for xml2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, input document or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Renderer/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// A failed batch reports the code of its first failure.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if isBrowserError(err) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadXML) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, xml2pdf.ErrNilSource) ||
		errors.Is(err, xml2pdf.ErrInvalidXML) ||
		errors.Is(err, xml2pdf.ErrEmptyTable) ||
		errors.Is(err, xml2pdf.ErrInvalidFont) ||
		errors.Is(err, xml2pdf.ErrInvalidRenderer) ||
		errors.Is(err, xml2pdf.ErrInvalidPageSize) ||
		errors.Is(err, xml2pdf.ErrInvalidOrientation) ||
		errors.Is(err, xml2pdf.ErrInvalidMargin) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoFiles) {
		return ExitUsage
	}

	return ExitGeneral
}

// isBrowserError reports whether err came from a rendering backend.
func isBrowserError(err error) bool {
	return errors.Is(err, xml2pdf.ErrBrowserConnect) ||
		errors.Is(err, xml2pdf.ErrPageCreate) ||
		errors.Is(err, xml2pdf.ErrPageLoad) ||
		errors.Is(err, xml2pdf.ErrPDFGeneration)
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xml2pdf [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert XML documents to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    XML file or directory, scanned recursively for *.xml")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-document timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --layout <s>          Layout: styled (default), report")
	fmt.Fprintln(w, "      --renderer <s>        Backend: pdf (default), chrome")
	fmt.Fprintln(w, "      --font <path>         TrueType font for font=\"custom\" elements")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layouts:")
	fmt.Fprintln(w, "  styled   Text paragraph and Table; cells read color, bold, align, font")
	fmt.Fprintln(w, "  report   Title and Table with Header and Row/Cell elements")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  invalid flags, config or document")
	fmt.Fprintln(w, "  3  file not found or not writable")
	fmt.Fprintln(w, "  4  rendering or browser error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  xml2pdf invoice.xml")
	fmt.Fprintln(w, "  xml2pdf --layout report -o out/ reports/")
	fmt.Fprintln(w, "  xml2pdf --renderer chrome --font fonts/Inter.ttf styled.xml")
}

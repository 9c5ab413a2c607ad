package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags. Empty or zero values mean
// "not set" so config file values apply.
type cliFlags struct {
	config   string
	output   string
	workers  int
	timeout  string
	layout   string
	renderer string
	font     string
	page     pageFlags
	quiet    bool
	verbose  bool
	version  bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// parseFlags parses args (without the program name) and returns the
// positional inputs. -h and --help return flag.ErrHelp.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("xml2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document timeout (e.g., 30s, 2m)")

	// Rendering flags
	fs.StringVar(&f.layout, "layout", "", "document layout: styled, report")
	fs.StringVar(&f.renderer, "renderer", "", "rendering backend: pdf, chrome")
	fs.StringVar(&f.font, "font", "", "TrueType font for font=\"custom\" elements")
	addPageFlags(fs, &f.page)

	// Output verbosity
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

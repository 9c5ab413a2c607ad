package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	xml2pdf "github.com/alnah/go-xml2pdf"
	"github.com/alnah/go-xml2pdf/internal/config"
	"github.com/alnah/go-xml2pdf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run parses args, converts the inputs and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'xml2pdf --help' for usage.")
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "xml2pdf %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.verbose, flags.quiet)
	defer func() { _ = logger.Sync() }()

	setMaxProcs(logger)

	if err := runConvert(ctx, positional, flags, env, logger); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags.renderer, flags.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs configures GOMAXPROCS for the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logger *zap.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, renderer, configName string) string {
	switch {
	case errors.Is(err, ErrBatchFailed):
		// Per-file hints were printed with each failure.
		return ""
	case errors.Is(err, xml2pdf.ErrBrowserConnect),
		errors.Is(err, xml2pdf.ErrPageCreate),
		errors.Is(err, xml2pdf.ErrPageLoad):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout(renderer)
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if configName != "" && !strings.ContainsAny(configName, "/\\") {
			searched = config.SearchPaths(configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, xml2pdf.ErrInvalidFont):
		return hints.ForFont()
	case errors.Is(err, xml2pdf.ErrEmptyTable):
		return hints.ForEmptyTable()
	case errors.Is(err, xml2pdf.ErrInvalidXML):
		return hints.ForInvalidXML()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

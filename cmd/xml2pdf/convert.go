package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	xml2pdf "github.com/alnah/go-xml2pdf"
	"github.com/alnah/go-xml2pdf/internal/config"
)

// Layout names accepted by --layout.
const (
	layoutStyled = "styled"
	layoutReport = "report"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrBatchFailed = errors.New("conversion failed")
)

// batchError reports failed conversions. It unwraps to the first failure
// so exit codes follow its cause.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrBatchFailed, e.first}
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	layout   string
	renderer string
	font     *xml2pdf.Font
	now      func() time.Time
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment, logger *zap.Logger) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins), then check the result
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputs, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, strings.Join(inputs, ", "))
	}

	opts, err := buildOptions(cfg, logger)
	if err != nil {
		return err
	}

	params := &conversionParams{layout: resolveLayout(cfg), renderer: cfg.Renderer, now: env.Now}
	if cfg.Font != "" {
		if params.layout == layoutReport {
			logger.Warn("font is ignored by the report layout", zap.String("font", cfg.Font))
		} else if params.font, err = xml2pdf.LoadFont(cfg.Font); err != nil {
			return err
		}
	}

	size := xml2pdf.ResolvePoolSize(cfg.Workers)
	if size > len(files) {
		size = len(files)
	}
	logger.Debug("starting conversion",
		zap.Int("files", len(files)),
		zap.Int("workers", size),
		zap.String("layout", params.layout))

	pool := xml2pdf.NewConverterPool(size, opts...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing converters", zap.Error(err))
		}
	}()

	results := convertBatch(ctx, pool, files, params)

	failed, first := printResults(results, flags.quiet, flags.verbose, params.renderer, env)
	if failed > 0 {
		return &batchError{failed: failed, first: first}
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.renderer != "" {
		cfg.Renderer = flags.renderer
	}
	if flags.font != "" {
		cfg.Font = flags.font
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
}

// resolveInputs determines the inputs from args or config.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveLayout returns the configured layout, "styled" by default.
func resolveLayout(cfg *config.Config) string {
	if strings.EqualFold(cfg.Layout, layoutReport) {
		return layoutReport
	}
	return layoutStyled
}

// buildOptions maps the merged config to converter options. Page settings
// are validated here so bad values fail before any file is read.
func buildOptions(cfg *config.Config, logger *zap.Logger) ([]xml2pdf.Option, error) {
	opts := []xml2pdf.Option{xml2pdf.WithLogger(logger)}

	if cfg.Renderer != "" {
		opts = append(opts, xml2pdf.WithRenderer(cfg.Renderer))
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, xml2pdf.WithTimeout(timeout))
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}
	if page != nil {
		opts = append(opts, xml2pdf.WithPage(page))
	}

	return opts, nil
}

// buildPageSettings creates page settings from config, filling unset
// fields with defaults. Returns nil when no page field is set.
func buildPageSettings(cfg *config.Config) (*xml2pdf.PageSettings, error) {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil, nil
	}

	ps := xml2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		ps.Margin = cfg.Page.Margin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

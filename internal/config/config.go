package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-xml2pdf/internal/fileutil"
	"github.com/alnah/go-xml2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxRendererLength    = 10   // "pdf", "chrome"
	MaxLayoutLength      = 10   // "report", "styled"
	MaxTimeoutLength     = 20   // "90s", "2m30s"
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// MaxWorkers bounds the workers setting; it matches the converter pool cap.
const MaxWorkers = 8

// Accepted values for the enumerated fields.
var (
	Renderers = []string{"pdf", "chrome"}
	Layouts   = []string{"styled", "report"}
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-xml2pdf"

// Config holds all configuration for document generation.
type Config struct {
	Renderer string       `yaml:"renderer"` // "pdf" or "chrome" (default: "pdf")
	Layout   string       `yaml:"layout"`   // "styled" or "report" (default: "styled")
	Font     string       `yaml:"font"`     // TrueType file for font="custom" (relative to the config file)
	Timeout  string       `yaml:"timeout"`  // Go duration per document, e.g. "45s" (empty = library default)
	Workers  int          `yaml:"workers"`  // Parallel conversions (0 = auto)
	Input    InputConfig  `yaml:"input"`
	Output   OutputConfig `yaml:"output"`
	Page     PageConfig   `yaml:"page"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
// Page values are range-checked by the converter, not here.
func (c *Config) Validate() error {
	if err := validateFieldLength("renderer", c.Renderer, MaxRendererLength); err != nil {
		return err
	}
	if err := validateFieldLength("layout", c.Layout, MaxLayoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("font", c.Font, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("timeout", c.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	if err := validateOneOf("renderer", c.Renderer, Renderers); err != nil {
		return err
	}
	if err := validateOneOf("layout", c.Layout, Layouts); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	return nil
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be a positive duration like \"45s\", got %q", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts an empty value or a case-insensitive member of allowed.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, " or "))
}

// DefaultConfig returns a neutral configuration: every field empty so the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// A relative font path is resolved against the config file's directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yamlutil.DecodeStrict(f, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Font != "" && !filepath.IsAbs(cfg.Font) {
		cfg.Font = filepath.Join(filepath.Dir(configPath), cfg.Font)
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried for a config name, in order:
// the current directory, then <user config dir>/go-xml2pdf/, each with
// the .yaml and .yml extensions.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

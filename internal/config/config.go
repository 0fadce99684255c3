// Package config loads and validates YAML configuration for book builds.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-bookpress/internal/fileutil"
	"github.com/alnah/go-bookpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBudget   = errors.New("invalid page budget")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength    = 200  // Book or chapter title
	MaxSubtitleLength = 200  // Title page subtitle
	MaxNameLength     = 100  // Author, category
	MaxDateLength     = 60   // "2025-12-31", "auto:MMMM D, YYYY"
	MaxTextLength     = 500  // Footer free-form text
	MaxPageSizeLength = 10   // "letter", "a4", "legal"
	MaxPathLength     = 4096 // Filesystem paths
)

// Config holds all configuration for book, image, and journal builds.
type Config struct {
	Input    InputConfig            `yaml:"input"`
	Output   OutputConfig           `yaml:"output"`
	Style    StyleConfig            `yaml:"style"`
	Assets   AssetsConfig           `yaml:"assets"`
	Page     PageConfig             `yaml:"page"`
	Budget   BudgetConfig           `yaml:"budget"`
	Images   ImagesConfig           `yaml:"images"`
	Footer   FooterConfig           `yaml:"footer"`
	Title    TitleConfig            `yaml:"title"`
	Chapters map[string]ChapterInfo `yaml:"chapters"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name or CSS file path (empty = built-in "book" style)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PageConfig defines PDF page geometry.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "letter", "a4", "legal" (default: "letter")
	Margin float64 `yaml:"margin"` // inches (default: 0.5)
}

// BudgetConfig defines character budgets for page splitting.
// Zero values fall back to the built-in defaults.
type BudgetConfig struct {
	Target    int     `yaml:"target"`
	Min       int     `yaml:"min"`
	Max       int     `yaml:"max"`
	Overshoot float64 `yaml:"overshoot"`
}

// ImagesConfig defines image fitting options.
type ImagesConfig struct {
	ShrinkFloor float64 `yaml:"shrinkFloor"` // 0 = default (0.8)
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // Optional; supports "auto" and "auto:FORMAT"
	Text           string `yaml:"text"` // Optional free-form text
}

// TitleConfig defines title page options.
type TitleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"` // Supports "auto" and "auto:FORMAT"
}

// ChapterInfo holds display metadata for a chapter prefix.
type ChapterInfo struct {
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"footer.date", c.Footer.Date, MaxDateLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"title.title", c.Title.Title, MaxTitleLength},
		{"title.subtitle", c.Title.Subtitle, MaxSubtitleLength},
		{"title.author", c.Title.Author, MaxNameLength},
		{"title.date", c.Title.Date, MaxDateLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
		default:
			return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
		}
	}

	if c.Page.Margin < 0 || c.Page.Margin > 3 {
		return fmt.Errorf("page.margin: must be between 0 and 3 inches, got %.2f", c.Page.Margin)
	}

	if err := c.Budget.validate(); err != nil {
		return err
	}

	if f := c.Images.ShrinkFloor; f != 0 && (f <= 0 || f > 1) {
		return fmt.Errorf("images.shrinkFloor: must be in (0, 1], got %.2f", f)
	}

	for prefix, info := range c.Chapters {
		if err := validateFieldLength("chapters."+prefix+".category", info.Category, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength("chapters."+prefix+".title", info.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	return nil
}

func (b BudgetConfig) validate() error {
	if b.Target < 0 || b.Min < 0 || b.Max < 0 {
		return fmt.Errorf("%w: values must be non-negative", ErrInvalidBudget)
	}
	if b.Overshoot != 0 && b.Overshoot < 1 {
		return fmt.Errorf("%w: overshoot must be at least 1, got %.2f", ErrInvalidBudget, b.Overshoot)
	}
	// Ordering is only checked across explicitly set values; zeros take defaults.
	if b.Min != 0 && b.Target != 0 && b.Min > b.Target {
		return fmt.Errorf("%w: min %d exceeds target %d", ErrInvalidBudget, b.Min, b.Target)
	}
	if b.Target != 0 && b.Max != 0 && b.Target > b.Max {
		return fmt.Errorf("%w: target %d exceeds max %d", ErrInvalidBudget, b.Target, b.Max)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Footer: FooterConfig{Enabled: false},
		Title:  TitleConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/bookpress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "bookpress", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

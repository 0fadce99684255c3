package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/config"
	"github.com/alnah/go-bookpress/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnknownCommand     = errors.New("unknown command")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// loadConfigOrDefault loads the named config, or returns defaults when no
// config was requested.
func loadConfigOrDefault(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(nil))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeBudget merges budget flags over config. CLI values win; zeros fall
// through to config, then to the built-in defaults inside the library.
func mergeBudget(flags budgetFlags, cfg *config.Config) bookpress.Budget {
	b := bookpress.Budget{
		Target:    cfg.Budget.Target,
		Min:       cfg.Budget.Min,
		Max:       cfg.Budget.Max,
		Overshoot: cfg.Budget.Overshoot,
	}
	if flags.target > 0 {
		b.Target = flags.target
	}
	if flags.min > 0 {
		b.Min = flags.min
	}
	if flags.max > 0 {
		b.Max = flags.max
	}
	if flags.overshoot > 0 {
		b.Overshoot = flags.overshoot
	}
	return b
}

// mergeGeometry merges page flags over config geometry.
func mergeGeometry(flags pageFlags, cfg *config.Config) bookpress.Geometry {
	geo := bookpress.DefaultGeometry()
	if cfg.Page.Size != "" {
		geo.PageSize = cfg.Page.Size
	}
	if cfg.Page.Margin > 0 {
		geo.MarginInches = cfg.Page.Margin
	}
	if flags.size != "" {
		geo.PageSize = flags.size
	}
	if flags.margin > 0 {
		geo.MarginInches = flags.margin
	}
	return geo
}

// buildServiceOptions assembles service options from render flags and config.
func buildServiceOptions(page pageFlags, render renderFlags, shrinkFloor float64, cfg *config.Config) ([]bookpress.Option, error) {
	opts := []bookpress.Option{
		bookpress.WithGeometry(mergeGeometry(page, cfg)),
	}

	style := cfg.Style.Name
	if render.style != "" {
		style = render.style
	}
	if style != "" {
		opts = append(opts, bookpress.WithStyle(style))
	}

	assetPath := cfg.Assets.BasePath
	if render.assetPath != "" {
		assetPath = render.assetPath
	}
	if assetPath != "" {
		opts = append(opts, bookpress.WithAssetPath(assetPath))
	}

	floor := cfg.Images.ShrinkFloor
	if shrinkFloor > 0 {
		floor = shrinkFloor
	}
	if floor > 0 {
		opts = append(opts, bookpress.WithShrinkFloor(floor))
	}

	if render.timeout != "" {
		timeout, err := time.ParseDuration(render.timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", render.timeout, err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid timeout %q: must be positive", render.timeout)
		}
		opts = append(opts, bookpress.WithTimeout(timeout))
	}

	return opts, nil
}

// buildFooter merges footer flags over config. Returns nil when the footer
// is disabled or unconfigured.
func buildFooter(flags footerCLIFlags, cfg *config.Config) *bookpress.Footer {
	if flags.disabled {
		return nil
	}

	enabled := cfg.Footer.Enabled || flags.pageNumber || flags.text != "" || flags.date != ""
	if !enabled {
		return nil
	}

	f := &bookpress.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           cfg.Footer.Date,
		Text:           cfg.Footer.Text,
	}
	if flags.position != "" {
		f.Position = flags.position
	}
	if flags.text != "" {
		f.Text = flags.text
	}
	if flags.date != "" {
		f.Date = flags.date
	}
	if flags.pageNumber {
		f.ShowPageNumber = true
	}
	return f
}

// buildTitle merges title page flags over config. Returns nil when the title
// page is disabled or unconfigured.
func buildTitle(flags titleCLIFlags, cfg *config.Config) *bookpress.Title {
	if flags.disabled {
		return nil
	}

	enabled := cfg.Title.Enabled || flags.title != ""
	if !enabled {
		return nil
	}

	t := &bookpress.Title{
		Title:    cfg.Title.Title,
		Subtitle: cfg.Title.Subtitle,
		Author:   cfg.Title.Author,
		Date:     cfg.Title.Date,
	}
	if flags.title != "" {
		t.Title = flags.title
	}
	if flags.subtitle != "" {
		t.Subtitle = flags.subtitle
	}
	if flags.author != "" {
		t.Author = flags.author
	}
	if flags.date != "" {
		t.Date = flags.date
	}
	return t
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > bookpress.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, bookpress.MaxPoolSize)
	}
	return nil
}

// writeResult writes the PDF, or the HTML when htmlOnly is set, creating
// parent directories as needed. Returns the path actually written.
func writeResult(outputPath string, res *bookpress.Result, htmlOnly bool) (string, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if htmlOnly {
		htmlPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlPath, res.HTML, filePermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return htmlPath, nil
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(outputPath, res.PDF, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return outputPath, nil
}

package main

import (
	"errors"
	"os"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/config"
)

// Exit codes for the bookpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, bookpress.ErrBrowserConnect) ||
		errors.Is(err, bookpress.ErrPageCreate) ||
		errors.Is(err, bookpress.ErrPageLoad) ||
		errors.Is(err, bookpress.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidBudget) ||
		errors.Is(err, bookpress.ErrEmptyMarkdown) ||
		errors.Is(err, bookpress.ErrNoChapters) ||
		errors.Is(err, bookpress.ErrNoImages) ||
		errors.Is(err, bookpress.ErrNoEntries) ||
		errors.Is(err, bookpress.ErrInvalidPageSize) ||
		errors.Is(err, bookpress.ErrInvalidMargin) ||
		errors.Is(err, bookpress.ErrInvalidShrinkFloor) ||
		errors.Is(err, bookpress.ErrInvalidBudget) ||
		errors.Is(err, bookpress.ErrInvalidFooterPosition) ||
		errors.Is(err, bookpress.ErrStyleNotFound) ||
		errors.Is(err, bookpress.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}

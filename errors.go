package bookpress

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrNoChapters    = errors.New("no chapters to assemble")
	ErrNoImages      = errors.New("no images to lay out")
	ErrNoEntries     = errors.New("no journal entries to render")

	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Settings validation errors.
	ErrInvalidPageSize       = errors.New("invalid page size")
	ErrInvalidMargin         = errors.New("invalid margin")
	ErrInvalidShrinkFloor    = errors.New("invalid shrink floor")
	ErrInvalidBudget         = errors.New("invalid page budget")
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

package bookpress

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-bookpress/internal/layout"
)

// Paper sizes in inches, keyed by lowercase name.
var paperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"a4":     {8.27, 11.69},
	"legal":  {8.5, 14},
}

// Geometry defines the physical page for PDF rendering and image layout.
type Geometry struct {
	PageSize     string  // "letter", "a4", "legal" (default: "letter")
	MarginInches float64 // default: 0.5
}

// DefaultGeometry is US Letter with half-inch margins.
func DefaultGeometry() Geometry {
	return Geometry{PageSize: "letter", MarginInches: 0.5}
}

// Validate checks the page size and margin.
func (g Geometry) Validate() error {
	if _, ok := paperSizes[strings.ToLower(g.PageSize)]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, g.PageSize)
	}
	w, _ := g.paperInches()
	if g.MarginInches < 0 || g.MarginInches*2 >= w {
		return fmt.Errorf("%w: %.2f inches", ErrInvalidMargin, g.MarginInches)
	}
	return nil
}

func (g Geometry) paperInches() (width, height float64) {
	size, ok := paperSizes[strings.ToLower(g.PageSize)]
	if !ok {
		size = paperSizes["letter"]
	}
	return size[0], size[1]
}

// UsableWidthPt returns the printable width in points (1/72 inch).
func (g Geometry) UsableWidthPt() float64 {
	w, _ := g.paperInches()
	return (w - 2*g.MarginInches) * 72
}

// UsableHeightPt returns the printable height in points.
func (g Geometry) UsableHeightPt() float64 {
	_, h := g.paperInches()
	return (h - 2*g.MarginInches) * 72
}

// Budget sets the character budgets for page splitting. Zero fields fall
// back to the built-in defaults (target 2750, min 2000, max 3500,
// overshoot 1.3).
type Budget struct {
	Target    int
	Min       int
	Max       int
	Overshoot float64
}

// DefaultBudget returns the built-in character budgets.
func DefaultBudget() Budget {
	b := layout.Budget{}.Normalized()
	return Budget{Target: b.Target, Min: b.Min, Max: b.Max, Overshoot: b.Overshoot}
}

// Validate checks budget ordering across explicitly set values.
func (b Budget) Validate() error {
	if b.Target < 0 || b.Min < 0 || b.Max < 0 {
		return fmt.Errorf("%w: values must be non-negative", ErrInvalidBudget)
	}
	if b.Overshoot != 0 && b.Overshoot < 1 {
		return fmt.Errorf("%w: overshoot must be at least 1, got %.2f", ErrInvalidBudget, b.Overshoot)
	}
	if b.Min != 0 && b.Target != 0 && b.Min > b.Target {
		return fmt.Errorf("%w: min %d exceeds target %d", ErrInvalidBudget, b.Min, b.Target)
	}
	if b.Target != 0 && b.Max != 0 && b.Target > b.Max {
		return fmt.Errorf("%w: target %d exceeds max %d", ErrInvalidBudget, b.Target, b.Max)
	}
	return nil
}

func (b Budget) toLayout() layout.Budget {
	return layout.Budget{
		Target:    b.Target,
		Min:       b.Min,
		Max:       b.Max,
		Overshoot: b.Overshoot,
	}
}

// Page is one paginated page of markdown content.
type Page struct {
	Content string
	Chars   int
}

// Footer configures the page footer rendered by Chrome.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Title configures the title page.
type Title struct {
	Title    string
	Subtitle string
	Author   string
	Date     string
}

// BookChapter is one chapter of a book: its display metadata and the
// markdown content of its pages in order.
type BookChapter struct {
	Prefix   string
	Category string
	Title    string
	Pages    []string
}

// BookInput assembles a complete book.
type BookInput struct {
	Title    *Title // optional title page
	Chapters []BookChapter
	Footer   *Footer
	CSS      string // extra CSS appended after the style
	HTMLOnly bool   // skip PDF generation
}

// ImagesInput lays out a sequence of images, one or more pages each.
type ImagesInput struct {
	Paths    []string
	Title    string // document title (default: "Screenshots")
	Footer   *Footer
	HTMLOnly bool
}

// JournalInput renders an action-log journal as a test report.
type JournalInput struct {
	Journal        string // journal markdown content
	ScreenshotsDir string
	Title          string
	Footer         *Footer
	HTMLOnly       bool
}

// Result holds the rendered outputs. PDF is nil when HTMLOnly was set.
type Result struct {
	HTML []byte
	PDF  []byte
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	budget      Budget
	geometry    Geometry
	shrinkFloor float64
	style       string
	assetPath   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("bookpress: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBudget sets the character budgets for pagination.
func WithBudget(b Budget) Option {
	return func(s *Service) {
		s.cfg.budget = b
	}
}

// WithGeometry sets the page geometry for PDF rendering and image layout.
func WithGeometry(g Geometry) Option {
	return func(s *Service) {
		s.cfg.geometry = g
	}
}

// WithShrinkFloor sets the minimum scale for squeezing an image onto one
// page before it gets sliced. Must be in (0, 1].
func WithShrinkFloor(f float64) Option {
	return func(s *Service) {
		s.cfg.shrinkFloor = f
	}
}

// WithStyle selects the stylesheet: a built-in style name or a CSS file path.
func WithStyle(style string) Option {
	return func(s *Service) {
		s.cfg.style = style
	}
}

// WithAssetPath loads styles and templates from a directory, falling back
// to the embedded assets.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}

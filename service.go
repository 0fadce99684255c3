package bookpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-bookpress/internal/assets"
	"github.com/alnah/go-bookpress/internal/dateutil"
	"github.com/alnah/go-bookpress/internal/fileutil"
	"github.com/alnah/go-bookpress/internal/imaging"
	"github.com/alnah/go-bookpress/internal/journal"
	"github.com/alnah/go-bookpress/internal/layout"
	"github.com/alnah/go-bookpress/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LinePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TitleInjector        = (*pipeline.TitleInjection)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
)

// Vertical room reserved under journal screenshots for their captions,
// in points.
const captionRoomPt = 72

// Service runs the pagination and rendering operations. Create with New,
// use the Build methods, and Close when done.
type Service struct {
	cfg           serviceConfig
	loader        assets.Loader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	titleInjector pipeline.TitleInjector
	tocInjector   pipeline.TOCInjector
	pdfConverter  pdfConverter
	resolvedStyle string
	now           func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithGeometry,
// WithStyle). Returns error if asset loading or validation fails.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout:     defaultTimeout,
			geometry:    DefaultGeometry(),
			shrinkFloor: layout.DefaultShrinkFloor,
		},
		loader:        assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.LinePreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		tocInjector:   pipeline.NewTOCInjection(),
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.cfg.budget.Validate(); err != nil {
		return nil, err
	}
	if err := s.cfg.geometry.Validate(); err != nil {
		return nil, err
	}
	if f := s.cfg.shrinkFloor; f <= 0 || f > 1 {
		return nil, fmt.Errorf("%w: %.2f (must be in (0, 1])", ErrInvalidShrinkFloor, f)
	}

	if s.cfg.assetPath != "" {
		loader, err := assets.NewDirLoader(s.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		s.loader = loader
	}

	if err := s.resolveStyle(); err != nil {
		return nil, err
	}

	// Title injector template comes from the loader so custom asset
	// directories can override the title page.
	if s.titleInjector == nil {
		tmpl, err := s.loader.LoadTemplate(assets.TitleTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading title template: %w", err)
		}
		injector, err := pipeline.NewTitleInjection(tmpl)
		if err != nil {
			return nil, fmt.Errorf("initializing title injector: %w", err)
		}
		s.titleInjector = injector
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// resolveStyle resolves the style setting (name or CSS file path) to CSS.
func (s *Service) resolveStyle() error {
	name := s.cfg.style
	if name == "" {
		name = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", name, err)
		}
		s.resolvedStyle = string(content)
		return nil
	}

	css, err := s.loader.LoadStyle(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	s.resolvedStyle = css
	return nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// Paginate splits chapter markdown into pages sized by the configured
// character budget. Page breaks land between blocks, preferring headings
// and rules once a page has its minimum content.
func (s *Service) Paginate(markdown string) ([]Page, error) {
	if markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	normalized := s.preprocessor.PreprocessMarkdown(context.Background(), markdown)
	blocks := layout.Segment(normalized)
	packed := layout.Pack(blocks, s.cfg.budget.toLayout())

	pages := make([]Page, len(packed))
	for i, p := range packed {
		pages[i] = Page{Content: p.Content(), Chars: p.Chars}
	}
	return pages, nil
}

// BuildBook assembles chapters into a complete book document with a table
// of contents and optional title page, and renders it to PDF.
// Recovers from internal panics to prevent crashes from propagating.
func (s *Service) BuildBook(ctx context.Context, input BookInput) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Chapters) == 0 {
		return nil, ErrNoChapters
	}
	if err := input.Footer.Validate(); err != nil {
		return nil, err
	}

	sections := make([]pipeline.ChapterSection, 0, len(input.Chapters))
	for _, ch := range input.Chapters {
		section := pipeline.ChapterSection{
			Anchor:   "section-" + ch.Prefix,
			Category: ch.Category,
			Title:    ch.Prefix + ": " + ch.Title,
		}
		for _, page := range ch.Pages {
			md := s.preprocessor.PreprocessMarkdown(ctx, page)
			fragment, err := s.htmlConverter.ToHTML(ctx, md)
			if err != nil {
				return nil, fmt.Errorf("converting chapter %s: %w", ch.Prefix, err)
			}
			section.Pages = append(section.Pages, fragment)
		}
		sections = append(sections, section)
	}

	docTitle := "Book"
	if input.Title != nil && input.Title.Title != "" {
		docTitle = input.Title.Title
	}

	htmlContent := pipeline.BuildBookHTML(docTitle, sections)

	css := s.resolvedStyle
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, css)

	htmlContent, err = s.injectTitle(ctx, htmlContent, input.Title)
	if err != nil {
		return nil, err
	}

	tocData := buildTOCData(input.Chapters)
	htmlContent, err = s.tocInjector.InjectTOC(ctx, htmlContent, tocData)
	if err != nil {
		return nil, fmt.Errorf("injecting TOC: %w", err)
	}

	return s.finish(ctx, htmlContent, input.Footer, input.HTMLOnly)
}

// BuildImages lays out images one per page, shrinking slightly to fit or
// slicing tall images across pages.
func (s *Service) BuildImages(ctx context.Context, input ImagesInput) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Paths) == 0 {
		return nil, ErrNoImages
	}
	if err := input.Footer.Validate(); err != nil {
		return nil, err
	}

	cfg := layout.FitConfig{
		PageWidth:   s.cfg.geometry.UsableWidthPt(),
		PageHeight:  s.cfg.geometry.UsableHeightPt(),
		ShrinkFloor: s.cfg.shrinkFloor,
	}

	var pages []pipeline.ImagePage
	for _, path := range input.Paths {
		imagePages, err := s.layoutImage(path, cfg)
		if err != nil {
			return nil, err
		}
		pages = append(pages, imagePages...)
	}

	docTitle := input.Title
	if docTitle == "" {
		docTitle = "Screenshots"
	}

	htmlContent := pipeline.BuildImageDocHTML(docTitle, pages)
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, s.resolvedStyle)

	return s.finish(ctx, htmlContent, input.Footer, input.HTMLOnly)
}

// layoutImage produces one page for an image that fits, or one page per
// slice for a tall image.
func (s *Service) layoutImage(path string, cfg layout.FitConfig) ([]pipeline.ImagePage, error) {
	width, height, err := imaging.Dimensions(path)
	if err != nil {
		return nil, err
	}

	plan, err := layout.FitImage(width, height, cfg)
	if err != nil {
		return nil, fmt.Errorf("fitting %s: %w", filepath.Base(path), err)
	}

	if plan.Fits {
		uri, err := imaging.FileDataURI(path)
		if err != nil {
			return nil, err
		}
		return []pipeline.ImagePage{{
			DataURI: uri,
			Width:   plan.Placement.Width,
			Height:  plan.Placement.Height,
		}}, nil
	}

	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	pages := make([]pipeline.ImagePage, 0, len(plan.Slices))
	for _, slice := range plan.Slices {
		band, err := imaging.CropRows(img, slice.SourceYStart, slice.SourceYEnd)
		if err != nil {
			return nil, fmt.Errorf("slicing %s: %w", name, err)
		}
		uri, err := imaging.PNGDataURI(band)
		if err != nil {
			return nil, err
		}
		pages = append(pages, pipeline.ImagePage{
			DataURI: uri,
			Width:   slice.RenderedWidth,
			Height:  slice.RenderedHeight,
			Caption: fmt.Sprintf("%s (%d/%d)", name, slice.Index, slice.Total),
		})
	}
	return pages, nil
}

// BuildJournal renders an action-log journal as a test report, each entry
// followed by the screenshots it references.
func (s *Service) BuildJournal(ctx context.Context, input JournalInput) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Journal == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := input.Footer.Validate(); err != nil {
		return nil, err
	}

	entries := journal.Parse(input.Journal, journal.DirExists(input.ScreenshotsDir))
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	cfg := layout.FitConfig{
		PageWidth:   s.cfg.geometry.UsableWidthPt(),
		PageHeight:  s.cfg.geometry.UsableHeightPt() - captionRoomPt,
		ShrinkFloor: s.cfg.shrinkFloor,
	}

	var body []string
	included := make(map[string]bool)
	for _, entry := range entries {
		body = append(body, journal.RenderHTML(entry))
		for _, shot := range entry.Screenshots {
			if included[shot] {
				continue
			}
			included[shot] = true
			figures, err := s.screenshotFigures(filepath.Join(input.ScreenshotsDir, shot), shot, cfg)
			if err != nil {
				return nil, err
			}
			body = append(body, figures...)
		}
	}

	docTitle := input.Title
	if docTitle == "" {
		docTitle = "Test Report"
	}

	htmlContent := pipeline.WrapDocument(docTitle, strings.Join(body, "\n"))
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, s.resolvedStyle)

	if input.Title != "" {
		htmlContent, err = s.injectTitle(ctx, htmlContent, &Title{Title: input.Title, Date: "auto"})
		if err != nil {
			return nil, err
		}
	}

	return s.finish(ctx, htmlContent, input.Footer, input.HTMLOnly)
}

// screenshotFigures produces inline figures for one screenshot, splitting
// tall captures the same way dedicated image pages do.
func (s *Service) screenshotFigures(path, name string, cfg layout.FitConfig) ([]string, error) {
	width, height, err := imaging.Dimensions(path)
	if err != nil {
		return nil, err
	}

	plan, err := layout.FitImage(width, height, cfg)
	if err != nil {
		return nil, fmt.Errorf("fitting %s: %w", name, err)
	}

	if plan.Fits {
		uri, err := imaging.FileDataURI(path)
		if err != nil {
			return nil, err
		}
		return []string{pipeline.ImageFigure(uri, plan.Placement.Width, plan.Placement.Height, "Screenshot: "+name)}, nil
	}

	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	figures := make([]string, 0, len(plan.Slices))
	for _, slice := range plan.Slices {
		band, err := imaging.CropRows(img, slice.SourceYStart, slice.SourceYEnd)
		if err != nil {
			return nil, fmt.Errorf("slicing %s: %w", name, err)
		}
		uri, err := imaging.PNGDataURI(band)
		if err != nil {
			return nil, err
		}
		caption := fmt.Sprintf("%s (%d/%d)", name, slice.Index, slice.Total)
		figures = append(figures, pipeline.ImageFigure(uri, slice.RenderedWidth, slice.RenderedHeight, caption))
	}
	return figures, nil
}

// injectTitle resolves the title page date and injects the title page.
// A nil title leaves the document unchanged.
func (s *Service) injectTitle(ctx context.Context, htmlContent string, title *Title) (string, error) {
	if title == nil {
		return htmlContent, nil
	}

	date, err := dateutil.Resolve(title.Date, s.now())
	if err != nil {
		return "", fmt.Errorf("resolving title date: %w", err)
	}

	data := &pipeline.TitleData{
		Title:    title.Title,
		Subtitle: title.Subtitle,
		Author:   title.Author,
		Date:     date,
	}
	out, err := s.titleInjector.InjectTitle(ctx, htmlContent, data)
	if err != nil {
		return "", fmt.Errorf("injecting title page: %w", err)
	}
	return out, nil
}

// finish resolves the footer date and runs PDF generation unless htmlOnly.
func (s *Service) finish(ctx context.Context, htmlContent string, footer *Footer, htmlOnly bool) (*Result, error) {
	res := &Result{HTML: []byte(htmlContent)}
	if htmlOnly {
		return res, nil
	}

	opts := &pdfOptions{Geometry: s.cfg.geometry}
	if footer != nil {
		resolved := *footer
		date, err := dateutil.Resolve(footer.Date, s.now())
		if err != nil {
			return nil, fmt.Errorf("resolving footer date: %w", err)
		}
		resolved.Date = date
		opts.Footer = &resolved
	}

	pdf, err := s.pdfConverter.ToPDF(ctx, htmlContent, opts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// buildTOCData groups consecutive chapters by category for the contents page.
func buildTOCData(chapters []BookChapter) *pipeline.TOCData {
	data := &pipeline.TOCData{}
	for _, ch := range chapters {
		entry := pipeline.TOCEntry{
			Anchor: "section-" + ch.Prefix,
			Label:  ch.Prefix + ": " + ch.Title,
			Pages:  len(ch.Pages),
		}
		n := len(data.Categories)
		if n == 0 || data.Categories[n-1].Name != ch.Category {
			data.Categories = append(data.Categories, pipeline.TOCCategory{Name: ch.Category})
			n++
		}
		data.Categories[n-1].Entries = append(data.Categories[n-1].Entries, entry)
	}
	return data
}

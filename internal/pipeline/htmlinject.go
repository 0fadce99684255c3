package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Sentinel errors for template rendering.
var ErrTitleRender = errors.New("title page template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot escape the style block.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// TitleData holds title page information for injection into HTML.
type TitleData struct {
	Title    string
	Subtitle string
	Author   string
	Date     string
}

// TitleInjector defines the contract for title page injection.
type TitleInjector interface {
	InjectTitle(ctx context.Context, htmlContent string, data *TitleData) (string, error)
}

// TitleInjection renders and injects a title page into HTML content.
type TitleInjection struct {
	tmpl *template.Template
}

// NewTitleInjection creates a TitleInjection from template content.
// Returns error if the template cannot be parsed.
func NewTitleInjection(tmplContent string) (*TitleInjection, error) {
	tmpl, err := template.New("title").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing title template: %w", err)
	}
	return &TitleInjection{tmpl: tmpl}, nil
}

// InjectTitle renders the title template and injects it after <body>.
// If data is nil, returns htmlContent unchanged.
func (t *TitleInjection) InjectTitle(ctx context.Context, htmlContent string, data *TitleData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTitleRender, err)
	}

	titleHTML := buf.String()
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + titleHTML + htmlContent[insertPos:], nil
		}
	}

	return titleHTML + htmlContent, nil
}

// TOCEntry is one chapter line in the table of contents.
type TOCEntry struct {
	Anchor string // chapter section id, without the leading #
	Label  string
	Pages  int
}

// TOCCategory groups consecutive chapters under one category heading.
type TOCCategory struct {
	Name    string
	Entries []TOCEntry
}

// TOCData holds the chapter-based table of contents to inject.
type TOCData struct {
	Title      string
	Categories []TOCCategory
}

// TOCInjector defines the contract for TOC injection.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error)
}

// TOCInjection implements TOCInjector with a chapter-based contents page.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// titleEndPattern finds the end-of-title-page marker. A marker span is used
// instead of an HTML comment because html/template strips comments.
var titleEndPattern = regexp.MustCompile(`(?i)<span[^>]*data-title-end[^>]*>\s*</span>`)

// InjectTOC renders the chapter TOC and injects it after the title page,
// or after <body> when no title page is present.
// If data is nil or empty, returns htmlContent unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil || len(data.Categories) == 0 {
		return htmlContent, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	tocHTML := generateChapterTOC(data)

	if loc := titleEndPattern.FindStringIndex(htmlContent); loc != nil {
		insertPos := loc[1]
		return htmlContent[:insertPos] + tocHTML + htmlContent[insertPos:], nil
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + tocHTML + htmlContent[insertPos:], nil
		}
	}

	return tocHTML + htmlContent, nil
}

// generateChapterTOC builds the contents page: chapters grouped by category,
// each entry linking to its section with a page count.
func generateChapterTOC(data *TOCData) string {
	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	title := data.Title
	if title == "" {
		title = "Table of Contents"
	}
	buf.WriteString(`<h1 class="toc-title">`)
	buf.WriteString(html.EscapeString(title))
	buf.WriteString(`</h1>`)

	for _, cat := range data.Categories {
		buf.WriteString(`<div class="toc-category">`)
		buf.WriteString(`<h2>`)
		buf.WriteString(html.EscapeString(cat.Name))
		buf.WriteString(`</h2>`)
		for _, e := range cat.Entries {
			buf.WriteString(`<div class="toc-entry"><a href="#`)
			buf.WriteString(html.EscapeString(e.Anchor))
			buf.WriteString(`">`)
			buf.WriteString(html.EscapeString(e.Label))
			buf.WriteString(`</a><span class="toc-pages">(`)
			fmt.Fprintf(&buf, "%d page", e.Pages)
			if e.Pages != 1 {
				buf.WriteString("s")
			}
			buf.WriteString(`)</span></div>`)
		}
		buf.WriteString(`</div>`)
	}

	buf.WriteString(`</nav>`)
	return buf.String()
}

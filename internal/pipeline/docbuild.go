package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// docTemplate wraps assembled body content in a complete HTML5 document.
const docTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// WrapDocument produces a full HTML5 document around body content.
func WrapDocument(title, body string) string {
	return fmt.Sprintf(docTemplate, html.EscapeString(title), body)
}

// ChapterSection is one chapter of the assembled book: a header plus the
// HTML of its pre-paginated pages, in order.
type ChapterSection struct {
	Anchor   string // section id, referenced by the TOC
	Category string
	Title    string
	Pages    []string // HTML fragment per page
}

// BuildBookHTML assembles chapter sections into a full document body and
// wraps it. Title page and TOC are injected afterwards by their stages.
func BuildBookHTML(docTitle string, chapters []ChapterSection) string {
	var buf strings.Builder

	for _, ch := range chapters {
		buf.WriteString(`<section class="chapter" id="`)
		buf.WriteString(html.EscapeString(ch.Anchor))
		buf.WriteString(`">`)
		buf.WriteString(`<header class="chapter-header">`)
		if ch.Category != "" {
			buf.WriteString(`<div class="chapter-category">`)
			buf.WriteString(html.EscapeString(ch.Category))
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`<h1>`)
		buf.WriteString(html.EscapeString(ch.Title))
		buf.WriteString(`</h1></header>`)

		for _, page := range ch.Pages {
			buf.WriteString(`<div class="page-content">`)
			buf.WriteString(page)
			buf.WriteString(`</div>`)
		}

		buf.WriteString(`</section>`)
	}

	return WrapDocument(docTitle, buf.String())
}

// ImagePage is one output sheet holding a fitted image or one slice of a
// split image. Width and Height are the rendered size in points; the sheet
// centers the image horizontally, flush to the top of the usable area.
type ImagePage struct {
	DataURI string
	Width   float64
	Height  float64
	Caption string // "name (i/N)" on split pages, empty otherwise
}

// BuildImageDocHTML assembles image pages into a full document, one sheet
// per page.
func BuildImageDocHTML(docTitle string, pages []ImagePage) string {
	var buf strings.Builder

	for _, p := range pages {
		buf.WriteString(`<div class="image-page">`)
		writeImg(&buf, p.DataURI, p.Width, p.Height, p.Caption)
		if p.Caption != "" {
			buf.WriteString(`<div class="image-caption">`)
			buf.WriteString(html.EscapeString(p.Caption))
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`</div>`)
	}

	return WrapDocument(docTitle, buf.String())
}

// ImageFigure produces an inline figure for flowing documents (journal
// reports), sized in points like the dedicated image sheets.
func ImageFigure(dataURI string, width, height float64, caption string) string {
	var buf strings.Builder
	buf.WriteString(`<figure class="screenshot">`)
	writeImg(&buf, dataURI, width, height, caption)
	if caption != "" {
		buf.WriteString(`<figcaption>`)
		buf.WriteString(html.EscapeString(caption))
		buf.WriteString(`</figcaption>`)
	}
	buf.WriteString(`</figure>`)
	return buf.String()
}

func writeImg(buf *strings.Builder, dataURI string, w, h float64, alt string) {
	fmt.Fprintf(buf, `<img src="%s" style="width:%.2fpt;height:%.2fpt" alt="%s"/>`,
		dataURI, w, h, html.EscapeString(alt))
}

package pipeline

import (
	"strings"
	"testing"
)

func TestBuildBookHTML(t *testing.T) {
	chapters := []ChapterSection{
		{
			Anchor:   "section-101",
			Category: "Project Setup",
			Title:    "101: Project Cleanup",
			Pages:    []string{"<p>page one</p>", "<p>page two</p>"},
		},
		{
			Anchor: "section-102",
			Title:  "102: App Shell",
			Pages:  []string{"<p>only page</p>"},
		},
	}

	got := BuildBookHTML("My Book", chapters)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>My Book</title>",
		`<section class="chapter" id="section-101">`,
		`<div class="chapter-category">Project Setup</div>`,
		"<h1>101: Project Cleanup</h1>",
		`<div class="page-content"><p>page one</p></div>`,
		`<div class="page-content"><p>page two</p></div>`,
		`id="section-102"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Chapter without category has no category div.
	second := got[strings.Index(got, "section-102"):]
	if strings.Contains(second, "chapter-category") {
		t.Error("empty category rendered a category div")
	}
}

func TestBuildImageDocHTML(t *testing.T) {
	pages := []ImagePage{
		{DataURI: "data:image/png;base64,AAAA", Width: 540, Height: 720, Caption: "shot.png (1/2)"},
		{DataURI: "data:image/png;base64,BBBB", Width: 540, Height: 300},
	}

	got := BuildImageDocHTML("screenshots", pages)

	for _, want := range []string{
		`<div class="image-page">`,
		`src="data:image/png;base64,AAAA"`,
		"width:540.00pt;height:720.00pt",
		`<div class="image-caption">shot.png (1/2)</div>`,
		"width:540.00pt;height:300.00pt",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Uncaptioned page renders no caption div.
	if strings.Count(got, "image-caption") != 1 {
		t.Errorf("expected exactly one caption, got %d", strings.Count(got, "image-caption"))
	}
}

func TestImageFigure(t *testing.T) {
	got := ImageFigure("data:image/png;base64,CC", 612, 100, "state-url-page4.png")

	for _, want := range []string{
		`<figure class="screenshot">`,
		"width:612.00pt;height:100.00pt",
		"<figcaption>state-url-page4.png</figcaption>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("figure missing %q: %s", want, got)
		}
	}
}

func TestWrapDocumentEscapesTitle(t *testing.T) {
	got := WrapDocument(`a <b> & "c"`, "<p>x</p>")
	if !strings.Contains(got, "a &lt;b&gt; &amp;") {
		t.Errorf("title not escaped: %s", got)
	}
}

package pipeline

import (
	"context"
	"regexp"
)

// crlfOrCR normalizes Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LinePreprocessor normalizes input before segmentation. It deliberately
// does nothing beyond line endings: the segmenter guarantees lossless
// reassembly of its input, so blank-line spacing must survive untouched.
type LinePreprocessor struct{}

// PreprocessMarkdown normalizes \r\n and \r to \n.
func (p *LinePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

package layout

import (
	"regexp"
	"strings"
)

// Precompiled patterns for line classification.
var (
	bulletItem   = regexp.MustCompile(`^\s*[-*+]\s`)
	numberedItem = regexp.MustCompile(`^\s*\d+\.\s`)
	stepHeading  = regexp.MustCompile(`^#+\s*Step\s+\d+\.\d+`)
)

// segState is the scanner state between lines.
type segState int

const (
	stIdle segState = iota
	stCode
	stTable
	stList
	stHeading
)

// segmenter scans lines one at a time. Structured runs (code, table, list,
// heading bundle) accumulate in buf; everything else accumulates in the
// paragraph buffer until a structured rule fires.
type segmenter struct {
	blocks []Block
	para   []string
	buf    []string
	state  segState

	// list state: blank lines held back until the next non-blank line
	// decides whether they belong to the list or end it
	pending []string

	// heading state
	headKind BlockKind
	headLead bool // lead-in paragraph started (blank absorption phase over)
}

// Segment scans content and returns the ordered list of indivisible blocks.
// Lines must be LF-separated; callers normalize CRLF upstream. Joining the
// returned blocks' contents with "\n" reproduces the input, except that a
// whitespace-only tail is dropped.
func Segment(content string) []Block {
	s := &segmenter{}
	for _, line := range strings.Split(content, "\n") {
		// A transition may refuse the line and ask for it to be rerun
		// against the successor state (e.g. the line after a table).
		for !s.feed(line) {
		}
	}
	s.finish()
	return s.blocks
}

// feed processes one line in the current state. It returns false when the
// line was not consumed and must be reprocessed.
func (s *segmenter) feed(line string) bool {
	switch s.state {
	case stCode:
		return s.feedCode(line)
	case stTable:
		return s.feedTable(line)
	case stList:
		return s.feedList(line)
	case stHeading:
		return s.feedHeading(line)
	}
	return s.feedIdle(line)
}

func (s *segmenter) feedIdle(line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case isFence(trimmed):
		s.flushParagraph()
		s.buf = []string{line}
		s.state = stCode

	case isTableRow(trimmed):
		s.flushParagraph()
		s.buf = []string{line}
		s.state = stTable

	case isRule(trimmed):
		s.flushParagraph()
		s.emit(line, KindRule)

	case strings.HasPrefix(line, "#"):
		s.flushParagraph()
		s.buf = []string{line}
		s.headKind = KindHeading
		if stepHeading.MatchString(line) {
			s.headKind = KindStep
		}
		s.headLead = false
		s.state = stHeading

	case isListItem(line):
		s.flushParagraph()
		s.buf = []string{line}
		s.pending = nil
		s.state = stList

	default:
		// Text and blank lines both belong to the paragraph buffer;
		// keeping blanks preserves the source spacing.
		s.para = append(s.para, line)
	}
	return true
}

// feedCode collects lines verbatim until the closing fence. A line that
// looks like a table or heading inside a fence is still code.
func (s *segmenter) feedCode(line string) bool {
	s.buf = append(s.buf, line)
	if isFence(strings.TrimSpace(line)) {
		s.emitBuf(KindCode)
		s.state = stIdle
	}
	return true
}

func (s *segmenter) feedTable(line string) bool {
	if isTableRow(strings.TrimSpace(line)) {
		s.buf = append(s.buf, line)
		return true
	}
	// Any non-table line ends the run and is reprocessed.
	s.emitBuf(KindTable)
	s.state = stIdle
	return false
}

func (s *segmenter) feedList(line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		// Held back: belongs to the list only if a further item follows.
		s.pending = append(s.pending, line)
		return true

	case isListItem(line):
		s.buf = append(s.buf, s.pending...)
		s.pending = nil
		s.buf = append(s.buf, line)
		return true

	case len(s.pending) == 0 && strings.HasPrefix(line, "  "):
		// Indented continuation of the previous item.
		s.buf = append(s.buf, line)
		return true
	}

	// Blank-then-non-item or unindented text: the list is over. The held
	// blanks were never part of it, so they seed the paragraph buffer.
	s.emitBuf(KindList)
	s.para = append(s.para, s.pending...)
	s.pending = nil
	s.state = stIdle
	return false
}

// feedHeading bundles a heading with any blank lines after it and its first
// paragraph run, so a page break never separates a heading from its opening
// sentence.
func (s *segmenter) feedHeading(line string) bool {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		if !s.headLead {
			s.buf = append(s.buf, line)
			return true
		}
		// Blank after the lead-in paragraph ends the bundle.
		s.emitBuf(s.headKind)
		s.state = stIdle
		return false
	}

	if strings.HasPrefix(line, "#") || isFence(trimmed) || strings.HasPrefix(trimmed, "|") {
		s.emitBuf(s.headKind)
		s.state = stIdle
		return false
	}

	s.buf = append(s.buf, line)
	s.headLead = true
	return true
}

// finish flushes whatever is open at end of input. An unterminated code
// fence is treated as closed.
func (s *segmenter) finish() {
	switch s.state {
	case stCode:
		s.emitBuf(KindCode)
	case stTable:
		s.emitBuf(KindTable)
	case stList:
		s.emitBuf(KindList)
		s.para = append(s.para, s.pending...)
		s.pending = nil
	case stHeading:
		s.emitBuf(s.headKind)
	}

	// A whitespace-only tail is noise, not a block.
	if len(s.para) > 0 {
		content := strings.Join(s.para, "\n")
		if strings.TrimSpace(content) != "" {
			s.blocks = append(s.blocks, newBlock(content, KindParagraph))
		}
		s.para = nil
	}
}

// flushParagraph emits the running paragraph buffer, if any. Mid-document
// the buffer is emitted even when whitespace-only so that spacing between
// structured blocks survives.
func (s *segmenter) flushParagraph() {
	if len(s.para) == 0 {
		return
	}
	s.blocks = append(s.blocks, newBlock(strings.Join(s.para, "\n"), KindParagraph))
	s.para = nil
}

func (s *segmenter) emitBuf(kind BlockKind) {
	s.emit(strings.Join(s.buf, "\n"), kind)
	s.buf = nil
}

func (s *segmenter) emit(content string, kind BlockKind) {
	s.blocks = append(s.blocks, newBlock(content, kind))
}

// isFence reports whether a trimmed line opens or closes a code fence.
func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```")
}

// isTableRow reports whether a trimmed line is a pipe-table row: it starts
// with the delimiter and has at least one interior delimiter.
func isTableRow(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.Contains(trimmed[1:], "|")
}

// isRule reports whether a trimmed line is a horizontal rule: three or more
// repeats of the same rule marker and nothing else.
func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}

// isListItem reports whether a line starts a bullet or numbered list item,
// possibly indented.
func isListItem(line string) bool {
	return bulletItem.MatchString(line) || numberedItem.MatchString(line)
}

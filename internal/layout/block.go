package layout

import "unicode/utf8"

// BlockKind classifies a content block. The kind decides whether a page break
// may be forced before the block (see Block.BreakPreferred).
type BlockKind int

// Block kinds, in no particular order.
const (
	KindParagraph BlockKind = iota
	KindHeading
	KindStep
	KindCode
	KindTable
	KindList
	KindRule
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindStep:
		return "step"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	case KindList:
		return "list"
	case KindRule:
		return "rule"
	}
	return "unknown"
}

// Block is an indivisible unit of source text. Blocks partition the source
// with no loss and no overlap: joining all block contents in order with "\n"
// reproduces the input. Blocks are created once by Segment and never mutated.
type Block struct {
	Content string
	Kind    BlockKind
	Length  int // character (rune) count of Content, used for budgeting
}

// newBlock builds a Block, computing its budgeting length.
func newBlock(content string, kind BlockKind) Block {
	return Block{
		Content: content,
		Kind:    kind,
		Length:  utf8.RuneCountInString(content),
	}
}

// BreakPreferred reports whether this block is a good place to start a new
// page. Headings, rules and step headings read better at the top of a page.
func (b Block) BreakPreferred() bool {
	switch b.Kind {
	case KindHeading, KindRule, KindStep:
		return true
	}
	return false
}

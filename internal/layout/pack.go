package layout

import "strings"

// Default packing budget, tuned for a US Letter page of 11pt serif text.
const (
	DefaultTargetChars = 2750
	DefaultMinChars    = 2000
	DefaultMaxChars    = 3500
	DefaultOvershoot   = 1.3
)

// Budget configures the page packer. Zero value fields fall back to the
// defaults above via Normalized.
type Budget struct {
	// Target is the preferred page size in characters.
	Target int
	// Min is the minimum fullness before a break is allowed.
	Min int
	// Max is the hard ceiling before a break is forced.
	Max int
	// Overshoot scales Target into the threshold past which a single
	// oversized block forces a break even below Min fullness.
	Overshoot float64
}

// Normalized returns a copy with zero fields replaced by defaults.
func (b Budget) Normalized() Budget {
	if b.Target == 0 {
		b.Target = DefaultTargetChars
	}
	if b.Min == 0 {
		b.Min = DefaultMinChars
	}
	if b.Max == 0 {
		b.Max = DefaultMaxChars
	}
	if b.Overshoot == 0 {
		b.Overshoot = DefaultOvershoot
	}
	return b
}

// Page is an ordered, non-empty run of blocks assigned to one output page.
type Page struct {
	Blocks []Block
	Chars  int // accumulated character count of Blocks
}

// Content returns the page text: the blocks' contents joined on newlines,
// trimmed of the blank padding that separated blocks in the source.
func (p Page) Content() string {
	parts := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		parts[i] = b.Content
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// Pack greedily assigns blocks to pages. No block is ever split; every block
// lands on exactly one page, in order. Pack is total: any input succeeds,
// including a single block larger than the hard ceiling, which simply yields
// one oversized page.
//
// A page is closed before block b when the current page is non-empty and any
// of the following holds:
//
//   - b is break-preferred (heading, rule, step) and the page has at least
//     Min characters
//   - adding b would exceed Max and the page has at least Min characters
//   - adding b would exceed Target*Overshoot, regardless of fullness, so a
//     single oversized block is not glued onto a large predecessor
func Pack(blocks []Block, budget Budget) []Page {
	budget = budget.Normalized()

	var pages []Page
	var cur Page

	for _, b := range blocks {
		if cur.Chars > 0 && breakBefore(b, cur.Chars, budget) {
			pages = append(pages, cur)
			cur = Page{}
		}
		cur.Blocks = append(cur.Blocks, b)
		cur.Chars += b.Length
	}

	if len(cur.Blocks) > 0 {
		pages = append(pages, cur)
	}
	return pages
}

// breakBefore decides whether to close the current page before adding b.
func breakBefore(b Block, cur int, budget Budget) bool {
	if b.BreakPreferred() && cur >= budget.Min {
		return true
	}
	next := cur + b.Length
	if next > budget.Max && cur >= budget.Min {
		return true
	}
	return float64(next) > float64(budget.Target)*budget.Overshoot
}

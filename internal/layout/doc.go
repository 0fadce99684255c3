// Package layout implements the pagination and media-layout engine.
//
// Two independent pipelines share the same philosophy (fit greedily, shrink
// moderately before splitting, split only when forced):
//
//   - Segment groups markdown lines into indivisible content blocks, and
//     Pack assigns those blocks to pages under a character budget.
//   - FitImage decides whether a raster image fits one page (optionally
//     shrunk up to the configured floor) and SliceImage computes the crop
//     boundaries when it does not.
//
// Every function here is a pure, deterministic computation over its inputs.
// Nothing in this package performs I/O or holds shared state, so callers may
// run independent invocations in parallel without coordination.
package layout

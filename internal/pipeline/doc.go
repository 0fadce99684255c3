// Package pipeline implements the HTML-producing stages of book generation.
//
// The stages here turn already-paginated content into a single HTML document
// ready for PDF rendering:
//   - Markdown preprocessing (line ending normalization)
//   - Markdown to HTML conversion via Goldmark
//   - CSS injection into the assembled document
//   - Title page and table of contents injection
//   - Image page assembly (one fitted image or slice per sheet)
//
// Pagination itself happens earlier, in internal/layout; PDF rendering
// happens later, in the root bookpress package using headless Chrome. This
// package only decides document structure and markup.
package pipeline

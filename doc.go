// Package bookpress turns markdown textbook chapters and screenshot
// collections into print-ready PDFs.
//
// The library covers four operations:
//
//   - Paginate splits chapter markdown into page files sized by a
//     character budget, breaking at block boundaries.
//   - BuildBook collates page files into chapters and renders a complete
//     book PDF with a title page and table of contents.
//   - BuildImages lays screenshot images out on pages, shrinking slightly
//     to fit or slicing tall captures across pages.
//   - BuildJournal renders an action-log journal as a test report with
//     entries interleaved with their screenshots.
//
// Create a Service with New, call the operations you need, and Close it to
// release the headless browser:
//
//	svc, err := bookpress.New(bookpress.WithTimeout(60 * time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer svc.Close()
package bookpress

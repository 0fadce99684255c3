package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page geometry flags.
type pageFlags struct {
	size   string
	margin float64
}

// budgetFlags holds character budget flags for page splitting.
type budgetFlags struct {
	target    int
	min       int
	max       int
	overshoot float64
}

// renderFlags holds rendering flags shared by the PDF-producing commands.
type renderFlags struct {
	style     string
	assetPath string
	timeout   string
	htmlOnly  bool
}

// footerCLIFlags holds footer flags.
type footerCLIFlags struct {
	position   string
	text       string
	date       string
	pageNumber bool
	disabled   bool
}

// titleCLIFlags holds title page flags.
type titleCLIFlags struct {
	title    string
	subtitle string
	author   string
	date     string
	disabled bool
}

// splitFlags holds all flags for the split command.
type splitFlags struct {
	common  commonFlags
	budget  budgetFlags
	output  string
	workers int
}

// bookFlags holds all flags for the book command.
type bookFlags struct {
	common commonFlags
	page   pageFlags
	render renderFlags
	footer footerCLIFlags
	title  titleCLIFlags
	output string
}

// imagesFlags holds all flags for the images command.
type imagesFlags struct {
	common      commonFlags
	page        pageFlags
	render      renderFlags
	footer      footerCLIFlags
	output      string
	title       string
	shrinkFloor float64
}

// journalFlags holds all flags for the journal command.
type journalFlags struct {
	common      commonFlags
	page        pageFlags
	render      renderFlags
	footer      footerCLIFlags
	output      string
	screenshots string
	title       string
	shrinkFloor float64
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail")
}

// addPageFlags adds page geometry flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches")
}

// addBudgetFlags adds character budget flags to a FlagSet.
func addBudgetFlags(fs *flag.FlagSet, f *budgetFlags) {
	fs.IntVar(&f.target, "target", 0, "target characters per page (0 = default)")
	fs.IntVar(&f.min, "min", 0, "minimum characters before a preferred break (0 = default)")
	fs.IntVar(&f.max, "max", 0, "maximum characters per page (0 = default)")
	fs.Float64Var(&f.overshoot, "overshoot", 0, "oversized-block tolerance factor (0 = default)")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerCLIFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.StringVar(&f.date, "footer-date", "", "footer date (\"auto\" = today)")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addTitleFlags adds title page flags to a FlagSet.
func addTitleFlags(fs *flag.FlagSet, f *titleCLIFlags) {
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.subtitle, "subtitle", "", "book subtitle")
	fs.StringVar(&f.author, "author", "", "book author")
	fs.StringVar(&f.date, "date", "", "title page date (\"auto\" = today)")
	fs.BoolVar(&f.disabled, "no-title-page", false, "disable title page")
}

// parseSplitFlags parses split command flags and returns positional args.
func parseSplitFlags(args []string) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	f := &splitFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: <input>/split_pages)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addBudgetFlags(fs, &f.budget)

	fs.Usage = func() { printSplitUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBookFlags parses book command flags and returns positional args.
func parseBookFlags(args []string) (*bookFlags, []string, error) {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	f := &bookFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: <input>/book.pdf)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addRenderFlags(fs, &f.render)
	addFooterFlags(fs, &f.footer)
	addTitleFlags(fs, &f.title)

	fs.Usage = func() { printBookUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseImagesFlags parses images command flags and returns positional args.
func parseImagesFlags(args []string) (*imagesFlags, []string, error) {
	fs := flag.NewFlagSet("images", flag.ContinueOnError)
	f := &imagesFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: <input>/images.pdf)")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.Float64Var(&f.shrinkFloor, "shrink-floor", 0, "minimum shrink factor before splitting (0 = default)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addRenderFlags(fs, &f.render)
	addFooterFlags(fs, &f.footer)

	fs.Usage = func() { printImagesUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseJournalFlags parses journal command flags and returns positional args.
func parseJournalFlags(args []string) (*journalFlags, []string, error) {
	fs := flag.NewFlagSet("journal", flag.ContinueOnError)
	f := &journalFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: <journal>.pdf)")
	fs.StringVarP(&f.screenshots, "screenshots", "s", "", "screenshots directory (default: <journal dir>/screenshots)")
	fs.StringVar(&f.title, "title", "", "report title")
	fs.Float64Var(&f.shrinkFloor, "shrink-floor", 0, "minimum shrink factor before splitting (0 = default)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addRenderFlags(fs, &f.render)
	addFooterFlags(fs, &f.footer)

	fs.Usage = func() { printJournalUsage(os.Stderr) }
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

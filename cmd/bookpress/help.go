package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookpress <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  split      Split chapter markdown files into page files")
	fmt.Fprintln(w, "  book       Assemble page files into a book PDF")
	fmt.Fprintln(w, "  images     Lay out images one per page into a PDF")
	fmt.Fprintln(w, "  journal    Render an Action Log journal as a test report PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bookpress help <command>' for details on a specific command.")
}

// printSplitUsage prints usage for the split command.
func printSplitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookpress split <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split chapter markdown files into page files sized by a character")
	fmt.Fprintln(w, "budget, plus a SPLIT_REPORT.txt summary.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: <dir>/split_pages)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --target <n>          Target characters per page")
	fmt.Fprintln(w, "      --min <n>             Minimum characters before a preferred break")
	fmt.Fprintln(w, "      --max <n>             Maximum characters per page")
	fmt.Fprintln(w, "      --overshoot <f>       Oversized-block tolerance factor")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file page counts")
}

// printBookUsage prints usage for the book command.
func printBookUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookpress book <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble NNN-pNN.md page files into a book PDF with a table of")
	fmt.Fprintln(w, "contents and optional title page. Chapter categories and titles")
	fmt.Fprintln(w, "come from the chapters map in the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: <dir>/book.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --title <s>           Book title (enables the title page)")
	fmt.Fprintln(w, "      --subtitle <s>        Book subtitle")
	fmt.Fprintln(w, "      --author <s>          Book author")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "      --no-title-page       Disable title page")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --margin <f>          Page margin in inches")
	fmt.Fprintln(w, "      --footer-position <s> Footer position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-date <s>     Footer date (\"auto\" = today)")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show chapter and page counts")
}

// printImagesUsage prints usage for the images command.
func printImagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookpress images <dir | files...> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lay out images one per page, shrinking slightly to fit or slicing")
	fmt.Fprintln(w, "tall captures across pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: <dir>/images.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --shrink-floor <f>    Minimum shrink factor before splitting")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --margin <f>          Page margin in inches")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printJournalUsage prints usage for the journal command.
func printJournalUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bookpress journal <journal.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an Action Log journal as a test report PDF. Screenshots")
	fmt.Fprintln(w, "referenced by entries are verified on disk and interleaved after")
	fmt.Fprintln(w, "their entries.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: <journal>.pdf)")
	fmt.Fprintln(w, "  -s, --screenshots <dir>   Screenshots directory (default: <journal dir>/screenshots)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --title <s>           Report title (enables the title page)")
	fmt.Fprintln(w, "      --shrink-floor <f>    Minimum shrink factor before splitting")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --margin <f>          Page margin in inches")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "split":
		printSplitUsage(env.Stdout)
	case "book":
		printBookUsage(env.Stdout)
	case "images":
		printImagesUsage(env.Stdout)
	case "journal":
		printJournalUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bookpress version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bookpress help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

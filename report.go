package bookpress

import (
	"fmt"
	"strings"
)

// SplitReportName is the summary file written next to generated pages.
// Book assembly skips it when collecting page files.
const SplitReportName = "SPLIT_REPORT.txt"

// SplitResult summarizes the pagination of one source file.
type SplitResult struct {
	SourceName string
	PageCount  int
}

// BuildSplitReport formats the pagination summary written alongside the
// generated page files.
func BuildSplitReport(sourceDir, outputDir string, target int, results []SplitResult) string {
	var b strings.Builder
	rule := strings.Repeat("-", 60)

	b.WriteString("Page Splitter Report\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Source: %s\n", sourceDir)
	fmt.Fprintf(&b, "Output: %s\n", outputDir)
	fmt.Fprintf(&b, "Target characters per page: %d\n\n", target)
	b.WriteString(rule + "\n")

	total := 0
	for _, r := range results {
		fmt.Fprintf(&b, "%s: %d pages\n", r.SourceName, r.PageCount)
		total += r.PageCount
	}
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "\nTotal: %d files -> %d pages\n", len(results), total)
	if len(results) > 0 {
		fmt.Fprintf(&b, "Average: %.1f pages per file\n", float64(total)/float64(len(results)))
	}
	return b.String()
}

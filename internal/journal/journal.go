package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const actionLogHeading = "## Action Log"

var (
	timestampPattern  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}_\d{2}:\d{2}:\d{2})\s*$`)
	explicitReference = regexp.MustCompile(`(?i)Screenshot:\s*(\S+\.png)`)
	bareReference     = regexp.MustCompile(`([a-zA-Z0-9_-]+\.png)`)
)

// Entry is one timestamped journal entry from the action log.
type Entry struct {
	Timestamp        string
	Content          string
	Screenshots      []string
	CategoryComplete bool
}

// Parse extracts entries from the text following the "## Action Log"
// heading. Each entry starts at a line holding only a timestamp of the form
// 2024-01-15_14:30:00 and runs until the next timestamp. Screenshot
// references are kept only when exists reports the file is present.
func Parse(content string, exists func(name string) bool) []Entry {
	var entries []Entry
	var current *Entry
	var body []string
	inLog := false

	flush := func() {
		if current == nil {
			return
		}
		text := strings.TrimSpace(strings.Join(body, "\n"))
		current.Content = text
		current.Screenshots = findScreenshots(text, exists)
		current.CategoryComplete = isCategoryComplete(text)
		entries = append(entries, *current)
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, actionLogHeading) {
			inLog = true
			continue
		}
		if !inLog {
			continue
		}
		if m := timestampPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			current = &Entry{Timestamp: m[1]}
			body = body[:0]
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return entries
}

// ParseFile reads and parses a journal file, verifying screenshot
// references against the given directory.
func ParseFile(journalPath, screenshotsDir string) ([]Entry, error) {
	data, err := os.ReadFile(journalPath) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return Parse(string(data), DirExists(screenshotsDir)), nil
}

// DirExists returns an existence predicate over files in dir.
func DirExists(dir string) func(name string) bool {
	return func(name string) bool {
		info, err := os.Stat(filepath.Join(dir, name))
		return err == nil && !info.IsDir()
	}
}

// findScreenshots collects screenshot references from entry text. Explicit
// "Screenshot: name.png" references come first, then any other .png
// filename mentioned, deduplicated and filtered by existence.
func findScreenshots(text string, exists func(name string) bool) []string {
	var found []string
	seen := make(map[string]bool)

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if exists == nil || exists(name) {
			found = append(found, name)
		}
	}

	for _, m := range explicitReference.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range bareReference.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return found
}

func isCategoryComplete(text string) bool {
	if strings.Contains(text, "=== ALL CATEGORIES") {
		return true
	}
	return strings.Contains(text, "=== CATEGORY") && strings.Contains(text, "COMPLETE ===")
}

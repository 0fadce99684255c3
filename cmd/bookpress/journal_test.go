package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bookpress "github.com/alnah/go-bookpress"
)

func TestRunJournalHTMLOnly(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	journalPath := filepath.Join(workDir, "journal.md")
	journal := `# QA Journal

## Action Log

2024-03-10_09:15:00

Verified V1.2 panel layout.
Screenshot: panel.png
Result: PASS
`
	if err := os.WriteFile(journalPath, []byte(journal), 0o600); err != nil {
		t.Fatal(err)
	}

	shotsDir := filepath.Join(workDir, "screenshots")
	if err := os.Mkdir(shotsDir, 0o750); err != nil {
		t.Fatal(err)
	}
	writeTestImage(t, shotsDir, "panel.png", 300, 200)

	env, stdout, _ := testEnv()
	if err := runJournal([]string{journalPath, "--html-only"}, env); err != nil {
		t.Fatalf("runJournal() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "journal.html"))
	if err != nil {
		t.Fatalf("reading html: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		`class="journal-entry"`,
		"2024-03-10_09:15:00",
		`<figure class="screenshot">`,
		"panel.png",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("journal HTML missing %q", want)
		}
	}
	if !strings.Contains(stdout.String(), "Created ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunJournalErrors(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()

	if err := runJournal([]string{"--html-only"}, env); !errors.Is(err, ErrNoInput) {
		t.Errorf("no input error = %v", err)
	}

	emptyPath := filepath.Join(t.TempDir(), "empty.md")
	if err := os.WriteFile(emptyPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := runJournal([]string{emptyPath, "--html-only"}, env); !errors.Is(err, bookpress.ErrEmptyMarkdown) {
		t.Errorf("empty journal error = %v", err)
	}
}

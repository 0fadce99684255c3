package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bookpress "github.com/alnah/go-bookpress"
)

func TestPagePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want string
	}{
		{"numeric prefix", "101-routing.md", "101"},
		{"letter prefix", "A1-appendix.md", "A1"},
		{"no numeric prefix", "intro-chapter.md", "intro"},
		{"no dash", "notes.md", "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagePrefix(tt.file); got != tt.want {
				t.Errorf("pagePrefix(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestRunSplit(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	para := strings.Repeat("word ", 30) // 150 chars
	content := "# Routing\n\n" + para + "\n\n" + para + "\n\n" + para
	if err := os.WriteFile(filepath.Join(inputDir, "101-routing.md"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	outputDir := filepath.Join(t.TempDir(), "pages")
	env, stdout, _ := testEnv()

	err := runSplit([]string{
		inputDir,
		"-o", outputDir,
		"-w", "1",
		"--target", "150", "--min", "100", "--max", "200",
	}, env)
	if err != nil {
		t.Fatalf("runSplit() error = %v", err)
	}

	first, err := os.ReadFile(filepath.Join(outputDir, "101-p01.md"))
	if err != nil {
		t.Fatalf("first page file: %v", err)
	}
	if !strings.Contains(string(first), "# Routing") {
		t.Errorf("first page missing heading:\n%s", first)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "101-p02.md")); err != nil {
		t.Errorf("second page file: %v", err)
	}

	report, err := os.ReadFile(filepath.Join(outputDir, bookpress.SplitReportName))
	if err != nil {
		t.Fatalf("split report: %v", err)
	}
	for _, want := range []string{"Page Splitter Report", "101-routing.md:", "Target characters per page: 150"} {
		if !strings.Contains(string(report), want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	if !strings.Contains(stdout.String(), "Split 1 files into") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunSplitErrors(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()

	if err := runSplit([]string{"-w", "-1", t.TempDir()}, env); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("bad workers error = %v", err)
	}

	if err := runSplit(nil, env); !errors.Is(err, ErrNoInput) {
		t.Errorf("no input error = %v", err)
	}

	if err := runSplit([]string{t.TempDir()}, env); err == nil || !strings.Contains(err.Error(), "no markdown files") {
		t.Errorf("empty dir error = %v", err)
	}
}

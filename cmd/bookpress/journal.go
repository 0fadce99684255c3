package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bookpress "github.com/alnah/go-bookpress"
)

// runJournal renders an Action Log journal into a test report PDF with
// referenced screenshots interleaved after their entries.
func runJournal(args []string, env *Environment) error {
	flags, positional, err := parseJournalFlags(args)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return fmt.Errorf("%w: pass a journal markdown file", ErrNoInput)
	}
	journalPath := positional[0]

	cfg, err := loadConfigOrDefault(flags.common.config)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(journalPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	screenshotsDir := flags.screenshots
	if screenshotsDir == "" {
		screenshotsDir = filepath.Join(filepath.Dir(journalPath), "screenshots")
	}

	opts, err := buildServiceOptions(flags.page, flags.render, flags.shrinkFloor, cfg)
	if err != nil {
		return err
	}
	svc, err := bookpress.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	res, err := svc.BuildJournal(ctx, bookpress.JournalInput{
		Journal:        string(content),
		ScreenshotsDir: screenshotsDir,
		Title:          flags.title,
		Footer:         buildFooter(flags.footer, cfg),
		HTMLOnly:       flags.render.htmlOnly,
	})
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		stem := strings.TrimSuffix(journalPath, filepath.Ext(journalPath))
		outputPath = stem + ".pdf"
	}
	written, err := writeResult(outputPath, res, flags.render.htmlOnly)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", written)
	}
	return nil
}

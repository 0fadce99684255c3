package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/chapters"
	"github.com/alnah/go-bookpress/internal/config"
	"github.com/alnah/go-bookpress/internal/fileutil"
	"github.com/alnah/go-bookpress/internal/hints"
)

// runBook collates page files into chapters and renders the assembled book
// with title page and table of contents.
func runBook(args []string, env *Environment) error {
	flags, positional, err := parseBookFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(flags.common.config)
	if err != nil {
		return err
	}

	inputDir, err := resolveInputDir(positional, cfg.Input.DefaultDir)
	if err != nil {
		return err
	}

	paths, err := fileutil.ListMarkdown(inputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	collated := chapters.Collate(paths, chapterInfos(cfg))
	if len(collated) == 0 {
		return fmt.Errorf("no page files found in %s%s", inputDir, hints.ForNoPages())
	}

	input := bookpress.BookInput{
		Title:    buildTitle(flags.title, cfg),
		Footer:   buildFooter(flags.footer, cfg),
		HTMLOnly: flags.render.htmlOnly,
	}
	for _, ch := range collated {
		chapter := bookpress.BookChapter{
			Prefix:   ch.Prefix,
			Category: ch.Info.Category,
			Title:    ch.Info.Title,
		}
		for _, page := range ch.Pages {
			content, err := os.ReadFile(page.Path) // #nosec G304 -- discovered path
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadInput, err)
			}
			chapter.Pages = append(chapter.Pages, string(content))
		}
		input.Chapters = append(input.Chapters, chapter)
	}

	opts, err := buildServiceOptions(flags.page, flags.render, 0, cfg)
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

	res, err := svc.BuildBook(ctx, input)
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = filepath.Join(inputDir, "book.pdf")
	}
	written, err := writeResult(outputPath, res, flags.render.htmlOnly)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			pageFiles := 0
			for _, ch := range input.Chapters {
				pageFiles += len(ch.Pages)
			}
			fmt.Fprintf(env.Stdout, "Assembled %d chapters (%d pages)\n", len(input.Chapters), pageFiles)
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", written)
	}
	return nil
}

// chapterInfos converts config chapter metadata to the collation map.
func chapterInfos(cfg *config.Config) chapters.InfoMap {
	infos := make(chapters.InfoMap, len(cfg.Chapters))
	for prefix, info := range cfg.Chapters {
		infos[prefix] = chapters.Info{Category: info.Category, Title: info.Title}
	}
	return infos
}

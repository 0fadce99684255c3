package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/chapters"
	"github.com/alnah/go-bookpress/internal/fileutil"
)

// splitOutcome holds the result of splitting one source file.
type splitOutcome struct {
	SourceName string
	PageCount  int
	Err        error
}

// runSplit splits chapter markdown files into page files sized by the
// character budget, writing them plus a split report to the output directory.
func runSplit(args []string, env *Environment) error {
	flags, positional, err := parseSplitFlags(args)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
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
	outputDir := flags.output
	if outputDir == "" {
		if cfg.Output.DefaultDir != "" {
			outputDir = cfg.Output.DefaultDir
		} else {
			outputDir = filepath.Join(inputDir, "split_pages")
		}
	}

	files, err := fileutil.ListMarkdown(inputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	budget := mergeBudget(flags.budget, cfg)
	if err := budget.Validate(); err != nil {
		return err
	}

	poolSize := bookpress.ResolvePoolSize(flags.workers)
	pool := bookpress.NewServicePool(poolSize, bookpress.WithBudget(budget))
	defer func() { _ = pool.Close() }()

	outcomes := splitBatch(pool, files, outputDir)

	failed := printSplitOutcomes(outcomes, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}

	if err := writeSplitReport(inputDir, outputDir, budget, outcomes); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Report: %s\n", filepath.Join(outputDir, bookpress.SplitReportName))
	}
	return nil
}

// splitBatch splits files concurrently using the service pool.
func splitBatch(pool *bookpress.ServicePool, files []string, outputDir string) []splitOutcome {
	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	outcomes := make([]splitOutcome, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					outcomes[idx] = splitOutcome{SourceName: filepath.Base(files[idx]), Err: err}
				}
				return
			}
			defer pool.Release(svc)

			for idx := range jobs {
				outcomes[idx] = splitFile(svc, files[idx], outputDir)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return outcomes
}

// splitFile splits one source file into numbered page files.
func splitFile(svc *bookpress.Service, path, outputDir string) splitOutcome {
	name := filepath.Base(path)
	outcome := splitOutcome{SourceName: name}

	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		return outcome
	}

	pages, err := svc.Paginate(string(content))
	if err != nil {
		outcome.Err = err
		return outcome
	}

	prefix := pagePrefix(name)
	for i, page := range pages {
		pagePath := filepath.Join(outputDir, chapters.PageFileName(prefix, i+1))
		// #nosec G306 -- page files are meant to be readable
		if err := os.WriteFile(pagePath, []byte(page.Content), filePermissions); err != nil {
			outcome.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			return outcome
		}
	}

	outcome.PageCount = len(pages)
	return outcome
}

// pagePrefix derives the chapter prefix for output page names. Falls back to
// the stem before the first dash, then the whole stem.
func pagePrefix(name string) string {
	if prefix, ok := chapters.Prefix(name); ok {
		return prefix
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if idx := strings.Index(stem, "-"); idx > 0 {
		return stem[:idx]
	}
	return stem
}

// writeSplitReport writes SPLIT_REPORT.txt summarizing the split run.
func writeSplitReport(inputDir, outputDir string, budget bookpress.Budget, outcomes []splitOutcome) error {
	target := budget.Target
	if target == 0 {
		target = bookpress.DefaultBudget().Target
	}

	results := make([]bookpress.SplitResult, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, bookpress.SplitResult{SourceName: o.SourceName, PageCount: o.PageCount})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].SourceName < results[j].SourceName })

	report := bookpress.BuildSplitReport(inputDir, outputDir, target, results)
	reportPath := filepath.Join(outputDir, bookpress.SplitReportName)
	// #nosec G306 -- report is meant to be readable
	if err := os.WriteFile(reportPath, []byte(report), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printSplitOutcomes reports per-file results and returns the failure count.
func printSplitOutcomes(outcomes []splitOutcome, quiet, verbose bool, env *Environment) int {
	failed := 0
	totalPages := 0

	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", o.SourceName, o.Err)
			continue
		}
		totalPages += o.PageCount
		if verbose {
			fmt.Fprintf(env.Stdout, "%s: %d pages\n", o.SourceName, o.PageCount)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Split %d files into %d pages\n", len(outcomes)-failed, totalPages)
	}
	return failed
}

// resolveInputDir determines the input directory from args or config.
func resolveInputDir(args []string, defaultDir string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if defaultDir != "" {
		return defaultDir, nil
	}
	return "", fmt.Errorf("%w: pass an input directory or set input.defaultDir in config", ErrNoInput)
}

package main

import (
	"context"
	"fmt"
	"path/filepath"

	bookpress "github.com/alnah/go-bookpress"
	"github.com/alnah/go-bookpress/internal/fileutil"
	"github.com/alnah/go-bookpress/internal/hints"
)

// runImages renders a directory of images (or explicit image files) into a
// one-image-per-page PDF, slicing tall captures across pages.
func runImages(args []string, env *Environment) error {
	flags, positional, err := parseImagesFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(flags.common.config)
	if err != nil {
		return err
	}

	paths, inputDir, err := resolveImagePaths(positional, cfg.Input.DefaultDir)
	if err != nil {
		return err
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

	res, err := svc.BuildImages(ctx, bookpress.ImagesInput{
		Paths:    paths,
		Title:    flags.title,
		Footer:   buildFooter(flags.footer, cfg),
		HTMLOnly: flags.render.htmlOnly,
	})
	if err != nil {
		return err
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = filepath.Join(inputDir, "images.pdf")
	}
	written, err := writeResult(outputPath, res, flags.render.htmlOnly)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "Laid out %d images\n", len(paths))
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", written)
	}
	return nil
}

// resolveImagePaths accepts either one directory to scan or explicit image
// files. Returns the paths and the directory used for default output.
func resolveImagePaths(args []string, defaultDir string) (paths []string, dir string, err error) {
	if len(args) == 1 && !fileutil.IsImagePath(args[0]) {
		dir = args[0]
	} else if len(args) == 0 {
		if defaultDir == "" {
			return nil, "", fmt.Errorf("%w: pass an image directory or files%s", ErrNoInput, hints.ForNoImages())
		}
		dir = defaultDir
	}

	if dir != "" {
		paths, err = fileutil.ListImages(dir)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		if len(paths) == 0 {
			return nil, "", fmt.Errorf("no images found in %s%s", dir, hints.ForNoImages())
		}
		return paths, dir, nil
	}

	for _, arg := range args {
		if !fileutil.IsImagePath(arg) {
			return nil, "", fmt.Errorf("%w: %s is not a supported image", ErrReadInput, arg)
		}
		if !fileutil.FileExists(arg) {
			return nil, "", fmt.Errorf("%w: %s", ErrReadInput, arg)
		}
	}
	return args, filepath.Dir(args[0]), nil
}

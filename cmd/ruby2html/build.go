package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	ruby2html "github.com/alnah/go-ruby2html"
	"github.com/alnah/go-ruby2html/internal/config"
	"github.com/alnah/go-ruby2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs = errors.New("too many arguments: expected at most one input directory")
	ErrReadStory   = errors.New("failed to read story file")
	ErrWritePage   = errors.New("failed to write page")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// buildSettings is the fully resolved configuration for one run:
// built-in defaults, overridden by config file, overridden by flags.
type buildSettings struct {
	inputDir  string
	outputDir string
	siteTitle string
	style     string
	assetPath string
}

// runBuild generates the whole site: stylesheet, one page per story, and
// the index. Any story read or write failure aborts the run; there is no
// per-file recovery.
func runBuild(ctx context.Context, flags *buildFlags, args []string, stdout, stderr io.Writer) error {
	settings, opts, err := resolveSettings(flags, args)
	if err != nil {
		return err
	}

	svc := ruby2html.New(opts...)

	stories, err := discoverStories(settings.inputDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(settings.outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := ensureStylesheet(svc, settings, stderr, flags.verbose); err != nil {
		return err
	}

	records := make([]ruby2html.PageRecord, 0, len(stories))
	for _, story := range stories {
		record, err := buildStory(ctx, svc, story, settings.outputDir)
		if err != nil {
			return err
		}
		records = append(records, record)
		if !flags.quiet {
			fmt.Fprintf(stdout, "Created %s\n", record.Filename)
		}
	}

	indexHTML, err := svc.RenderIndex(ctx, records)
	if err != nil {
		return err
	}
	indexPath := filepath.Join(settings.outputDir, svc.IndexName())
	if err := os.WriteFile(indexPath, indexHTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePage, indexPath, err)
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s (%d stories)\n", svc.IndexName(), len(records))
	}

	return nil
}

// buildStory renders one source file and writes its page.
func buildStory(ctx context.Context, svc *ruby2html.Service, story StoryFile, outputDir string) (ruby2html.PageRecord, error) {
	content, err := os.ReadFile(story.Path) // #nosec G304 -- path comes from directory scan
	if err != nil {
		return ruby2html.PageRecord{}, fmt.Errorf("%w: %s: %v", ErrReadStory, story.Path, err)
	}

	page, err := svc.RenderStory(ctx, ruby2html.Input{
		Text:          string(content),
		FallbackTitle: storyStem(story.Name),
		Format:        story.Format,
	})
	if err != nil {
		return ruby2html.PageRecord{}, fmt.Errorf("rendering %s: %w", story.Path, err)
	}

	outPath := filepath.Join(outputDir, story.OutputName)
	if err := os.WriteFile(outPath, page.HTML, filePermissions); err != nil {
		return ruby2html.PageRecord{}, fmt.Errorf("%w: %s: %v", ErrWritePage, outPath, err)
	}

	return ruby2html.PageRecord{Filename: story.OutputName, Title: page.Title}, nil
}

// ensureStylesheet writes the default stylesheet when none exists.
// An existing stylesheet is never overwritten, so user edits survive rebuilds.
func ensureStylesheet(svc *ruby2html.Service, settings buildSettings, stderr io.Writer, verbose bool) error {
	cssPath := filepath.Join(settings.outputDir, svc.StylesheetName())

	css, err := svc.StyleContent(settings.style)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", settings.style, err)
	}

	created, err := fileutil.EnsureFile(cssPath, css, filePermissions)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePage, cssPath, err)
	}
	if verbose {
		if created {
			fmt.Fprintf(stderr, "Created stylesheet %s\n", cssPath)
		} else {
			fmt.Fprintf(stderr, "Keeping existing stylesheet %s\n", cssPath)
		}
	}
	return nil
}

// resolveSettings merges built-in defaults, the optional config file, and
// CLI flags (flags win) into one settings value plus service options.
func resolveSettings(flags *buildFlags, args []string) (buildSettings, []ruby2html.Option, error) {
	if len(args) > 1 {
		return buildSettings{}, nil, fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return buildSettings{}, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	settings := buildSettings{
		inputDir:  firstNonEmpty(positionalArg(args), cfg.Input.Dir, "."),
		siteTitle: firstNonEmpty(flags.siteTitle, cfg.Site.Title, ruby2html.DefaultSiteTitle),
		style:     firstNonEmpty(flags.style, cfg.Assets.Style, ruby2html.DefaultStyle),
		assetPath: firstNonEmpty(flags.assetPath, cfg.Assets.BasePath),
	}
	settings.outputDir = firstNonEmpty(flags.out, cfg.Output.Dir, settings.inputDir)

	opts := []ruby2html.Option{
		ruby2html.WithSiteTitle(settings.siteTitle),
	}
	if cfg.Site.Stylesheet != "" {
		opts = append(opts, ruby2html.WithStylesheetName(cfg.Site.Stylesheet))
	}
	if cfg.Site.Index != "" {
		opts = append(opts, ruby2html.WithIndexName(cfg.Site.Index))
	}
	if settings.assetPath != "" {
		loader, err := ruby2html.NewAssetLoader(settings.assetPath)
		if err != nil {
			return buildSettings{}, nil, err
		}
		opts = append(opts, ruby2html.WithAssetLoader(loader))
	}

	return settings, opts, nil
}

// positionalArg returns the single optional positional argument.
func positionalArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

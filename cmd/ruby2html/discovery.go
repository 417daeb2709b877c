package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ruby2html "github.com/alnah/go-ruby2html"
)

// Sentinel errors for story discovery.
var ErrInputDir = errors.New("cannot read input directory")

// storyFormats maps source extensions to the library formats.
var storyFormats = map[string]string{
	".txt": ruby2html.FormatText,
	".md":  ruby2html.FormatMarkdown,
}

// StoryFile represents one discovered source file.
type StoryFile struct {
	Path       string // Full path to the source file
	Name       string // Source file name (used for ordering)
	OutputName string // Page file name: source base name with .html
	Format     string // ruby2html format derived from the extension
}

// discoverStories lists the story files in dir, sorted lexicographically by
// file name so rebuild output order is deterministic. The scan is not
// recursive; subdirectories are ignored.
func discoverStories(dir string) ([]StoryFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputDir, dir, err)
	}

	var stories []StoryFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		format, ok := storyFormats[ext]
		if !ok {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ext)
		stories = append(stories, StoryFile{
			Path:       filepath.Join(dir, entry.Name()),
			Name:       entry.Name(),
			OutputName: stem + ".html",
			Format:     format,
		})
	}

	sort.Slice(stories, func(i, j int) bool { return stories[i].Name < stories[j].Name })
	return stories, nil
}

// storyStem returns the source file name without its extension, used as the
// fallback title for untitled stories.
func storyStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ruby2html "github.com/alnah/go-ruby2html"
)

func TestDiscoverStories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"zebra.txt":  "z",
		"apple.txt":  "a",
		"middle.md":  "m",
		"notes.html": "ignored",
		"README":     "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.txt"), 0o750); err != nil {
		t.Fatal(err)
	}

	stories, err := discoverStories(dir)
	if err != nil {
		t.Fatalf("discoverStories error: %v", err)
	}

	wantNames := []string{"apple.txt", "middle.md", "zebra.txt"}
	if len(stories) != len(wantNames) {
		t.Fatalf("got %d stories, want %d", len(stories), len(wantNames))
	}
	for i, want := range wantNames {
		if stories[i].Name != want {
			t.Errorf("stories[%d].Name = %q, want %q", i, stories[i].Name, want)
		}
	}

	if stories[0].OutputName != "apple.html" {
		t.Errorf("OutputName = %q, want apple.html", stories[0].OutputName)
	}
	if stories[0].Format != ruby2html.FormatText {
		t.Errorf("txt Format = %q, want FormatText", stories[0].Format)
	}
	if stories[1].Format != ruby2html.FormatMarkdown {
		t.Errorf("md Format = %q, want FormatMarkdown", stories[1].Format)
	}
}

func TestDiscoverStories_EmptyDir(t *testing.T) {
	t.Parallel()

	stories, err := discoverStories(t.TempDir())
	if err != nil {
		t.Fatalf("discoverStories error: %v", err)
	}
	if len(stories) != 0 {
		t.Errorf("got %d stories, want 0", len(stories))
	}
}

func TestDiscoverStories_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := discoverStories(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInputDir) {
		t.Errorf("discoverStories error = %v, want ErrInputDir", err)
	}
}

func TestStoryStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"little-red.txt", "little-red"},
		{"story.md", "story"},
		{"noext", "noext"},
		{"two.dots.txt", "two.dots"},
	}

	for _, tt := range tests {
		if got := storyStem(tt.input); got != tt.want {
			t.Errorf("storyStem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

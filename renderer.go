package ruby2html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// bodyRenderer abstracts story body rendering.
type bodyRenderer interface {
	RenderBody(ctx context.Context, text string) (string, error)
}

// textRenderer renders plain annotated text (the FormatText pipeline).
type textRenderer struct{}

func (textRenderer) RenderBody(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return RenderRuby(text), nil
}

// markdownRenderer renders Markdown stories using goldmark (pure Go).
// Ruby substitution runs line by line on the raw source first; the
// resulting <ruby> markup survives the Markdown render because the
// renderer is configured to pass raw HTML through.
type markdownRenderer struct {
	md goldmark.Markdown
}

// newMarkdownRenderer creates a markdownRenderer with GFM extensions.
func newMarkdownRenderer() *markdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Keep substituted <ruby> elements
			html.WithXHTML(),  // Self-closing tags
		),
	)
	return &markdownRenderer{md: md}
}

// RenderBody substitutes annotations and converts the result to an HTML
// fragment. Unlike FormatText, spaces are preserved: Markdown whitespace
// is significant.
func (r *markdownRenderer) RenderBody(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(normalizeNewlines(text), "\n")
	for i, line := range lines {
		lines[i] = rubyPattern.ReplaceAllString(line, "<ruby>$1<rt>$2</rt></ruby>")
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(strings.Join(lines, "\n")), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBodyRender, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

package ruby2html

import (
	"context"
	"fmt"
)

// Service orchestrates the story-to-HTML pipeline.
type Service struct {
	cfg      serviceConfig
	text     bodyRenderer
	markdown bodyRenderer
	pages    *pageAssembler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSiteTitle).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			siteTitle:  DefaultSiteTitle,
			stylesheet: DefaultStylesheet,
			indexName:  DefaultIndexName,
		},
		text:     textRenderer{},
		markdown: newMarkdownRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.pages = newPageAssembler(s.cfg.loader)

	return s
}

// RenderStory runs the full pipeline for one story: title extraction, body
// rendering, and page assembly. The context is checked between stages.
func (s *Service) RenderStory(ctx context.Context, input Input) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := extractTitle(input.Text, input.FallbackTitle, input.Format == FormatMarkdown)

	body, err := s.renderer(input.Format).RenderBody(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	html, err := s.pages.AssemblePage(ctx, storyPageData{
		Title:      title,
		Stylesheet: s.cfg.stylesheet,
		Index:      s.cfg.indexName,
		Body:       markupHTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	return &Page{Title: title, HTML: html}, nil
}

// RenderIndex produces the list page for the given records, in the order
// they are supplied. Callers are expected to pass records sorted by source
// name so rebuilds are deterministic.
func (s *Service) RenderIndex(ctx context.Context, records []PageRecord) ([]byte, error) {
	html, err := s.pages.AssembleIndex(ctx, indexPageData{
		SiteTitle:  s.cfg.siteTitle,
		Stylesheet: s.cfg.stylesheet,
		Pages:      records,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling index: %w", err)
	}
	return html, nil
}

// SiteTitle returns the configured site title.
func (s *Service) SiteTitle() string {
	return s.cfg.siteTitle
}

// StylesheetName returns the stylesheet file name pages link to.
func (s *Service) StylesheetName() string {
	return s.cfg.stylesheet
}

// IndexName returns the index file name story pages link back to.
func (s *Service) IndexName() string {
	return s.cfg.indexName
}

// StyleContent returns the CSS for a named style, honoring a custom asset
// loader if one is configured. The site builder writes this as the shared
// stylesheet when none exists yet.
func (s *Service) StyleContent(name string) (string, error) {
	if s.cfg.loader != nil {
		return s.cfg.loader.LoadStyle(name)
	}
	return loadEmbeddedStyle(name)
}

// renderer picks the body renderer for a story format. Validate has already
// rejected unknown formats.
func (s *Service) renderer(format string) bodyRenderer {
	if format == FormatMarkdown {
		return s.markdown
	}
	return s.text
}

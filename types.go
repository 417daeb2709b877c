package ruby2html

import "fmt"

// Story format constants.
const (
	// FormatText is plain annotated text: blank-line blocks become
	// paragraphs and literal spaces are stripped before substitution.
	FormatText = "text"

	// FormatMarkdown is Markdown prose with inline annotations. Whitespace
	// is preserved because Markdown syntax depends on it.
	FormatMarkdown = "markdown"
)

// Site defaults, matching the zero-configuration behavior.
const (
	DefaultSiteTitle  = "Chinese Reading"
	DefaultStylesheet = "style.css"
	DefaultIndexName  = "index.html"
)

// DefaultStyle is the name of the built-in CSS style.
const DefaultStyle = "default"

// Input contains rendering parameters for one story.
type Input struct {
	Text          string // Story content (may be empty)
	FallbackTitle string // Title used when no usable first line exists (required)
	Format        string // FormatText or FormatMarkdown ("" = FormatText)
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if in.FallbackTitle == "" {
		return ErrEmptyFallbackTitle
	}
	switch in.Format {
	case "", FormatText, FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, in.Format)
	}
}

// Page is a fully assembled story page.
type Page struct {
	Title string // Display title extracted from the story (or the fallback)
	HTML  []byte // Complete HTML document
}

// PageRecord identifies one generated page for the index.
type PageRecord struct {
	Filename string // Output file name the index links to
	Title    string // Display title shown as the link text
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	siteTitle  string
	stylesheet string
	indexName  string
	loader     AssetLoader
}

// WithSiteTitle sets the site title used on the index page.
// Panics if title is empty (programmer error).
func WithSiteTitle(title string) Option {
	if title == "" {
		panic("ruby2html: WithSiteTitle title must not be empty")
	}
	return func(s *Service) {
		s.cfg.siteTitle = title
	}
}

// WithStylesheetName sets the stylesheet file name pages link to.
func WithStylesheetName(name string) Option {
	if name == "" {
		panic("ruby2html: WithStylesheetName name must not be empty")
	}
	return func(s *Service) {
		s.cfg.stylesheet = name
	}
}

// WithIndexName sets the index file name story pages link back to.
func WithIndexName(name string) Option {
	if name == "" {
		panic("ruby2html: WithIndexName name must not be empty")
	}
	return func(s *Service) {
		s.cfg.indexName = name
	}
}

// WithAssetLoader sets a custom loader for templates and styles.
func WithAssetLoader(loader AssetLoader) Option {
	return func(s *Service) {
		s.cfg.loader = loader
	}
}

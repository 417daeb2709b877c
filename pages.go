package ruby2html

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-ruby2html/internal/assets"
)

// Template asset names.
const (
	storyTemplateName = "story"
	indexTemplateName = "index"
)

// storyPageData feeds the story page template.
type storyPageData struct {
	Title      string
	Stylesheet string
	Index      string
	Body       template.HTML // pre-rendered, segments escaped during substitution
}

// indexPageData feeds the index page template.
type indexPageData struct {
	SiteTitle  string
	Stylesheet string
	Pages      []PageRecord
}

// pageAssembler renders complete pages from html/template sources.
// Templates are compiled once at construction so the assembler is immutable
// afterwards and safe to share. A nil loader means the embedded defaults.
type pageAssembler struct {
	story *template.Template
	index *template.Template
	err   error // deferred load/parse error, surfaced on first use
}

func newPageAssembler(loader AssetLoader) *pageAssembler {
	a := &pageAssembler{}
	a.story, a.err = parsePageTemplate(loader, storyTemplateName)
	if a.err == nil {
		a.index, a.err = parsePageTemplate(loader, indexTemplateName)
	}
	return a
}

// AssemblePage wraps one rendered body and title into a full story page.
func (a *pageAssembler) AssemblePage(ctx context.Context, data storyPageData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}
	var buf bytes.Buffer
	if err := a.story.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.Bytes(), nil
}

// AssembleIndex renders the list page linking every generated story.
func (a *pageAssembler) AssembleIndex(ctx context.Context, data indexPageData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}
	var buf bytes.Buffer
	if err := a.index.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.Bytes(), nil
}

// markupHTML marks a rendered body as safe for template insertion. Bodies
// are escaped segment by segment during substitution, so the only unescaped
// characters left are the ruby markup itself.
func markupHTML(body string) template.HTML {
	return template.HTML(body) // #nosec G203 -- segments escaped in substituteRuby
}

// parsePageTemplate loads a template source by name and compiles it.
func parsePageTemplate(loader AssetLoader, name string) (*template.Template, error) {
	var src string
	var err error
	if loader != nil {
		src, err = loader.LoadTemplate(name)
	} else {
		src, err = assets.LoadTemplate(name)
		err = convertAssetError(err)
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s template: %v", ErrPageRender, name, err)
	}
	return tmpl, nil
}

// Package ruby2html converts annotated story text into HTML pages with
// ruby (phonetic) annotations.
//
// Source documents are plain UTF-8 text where runs of Han characters carry
// an inline pronunciation guide in parentheses:
//
//	小(xiǎo) 红(hóng) 帽(mào)
//
// Each annotated run becomes a <ruby> element with the pronunciation in a
// <rt> above it. Blank-line-delimited blocks become paragraphs, and literal
// spaces are stripped from plain-text stories (they exist only to keep the
// source readable).
//
// # Quick Start
//
// Create a service, render a story, and write the page:
//
//	svc := ruby2html.New(ruby2html.WithSiteTitle("Chinese Reading"))
//
//	page, err := svc.RenderStory(ctx, ruby2html.Input{
//	    Text:          content,
//	    FallbackTitle: "little-red",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("little-red.html", page.HTML, 0644)
//
// After rendering every story, build the index from the collected records:
//
//	index, err := svc.RenderIndex(ctx, records)
//
// # Rendering Pipeline
//
// The pipeline per story:
//
//  1. Title extraction from the first non-empty line (annotations stripped)
//  2. Body rendering (ruby substitution; Markdown stories go through Goldmark)
//  3. Page assembly via the story template (stylesheet link, back link, body)
//
// Story prose may also be written in Markdown (Input.Format =
// FormatMarkdown); ruby substitution runs before the Markdown render so
// annotations work inside headings, emphasis, and lists.
//
// # Custom Assets
//
// The default stylesheet and page templates are embedded. Override them
// with an AssetLoader:
//
//	loader, err := ruby2html.NewAssetLoader("/path/to/assets")
//	svc := ruby2html.New(ruby2html.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	└── templates/
//	    ├── story.html
//	    └── index.html
package ruby2html

package ruby2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyFallbackTitle = errors.New("fallback title cannot be empty")
	ErrUnknownFormat      = errors.New("unknown story format")
	ErrBodyRender         = errors.New("body rendering failed")
	ErrPageRender         = errors.New("page template rendering failed")
	ErrIndexRender        = errors.New("index template rendering failed")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

package assets

import "errors"

// Sentinel errors for style and template loading. The not-found pair drives
// the resolver's fallback decision; everything else is terminal.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names with separators, dots, or nothing at all.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects a custom asset root that is missing,
	// unreadable, or not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead marks an I/O failure on an asset that does exist.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal marks a resolved asset path escaping the base directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

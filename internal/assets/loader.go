package assets

// AssetLoader loads the two asset kinds a story site needs: CSS styles and
// HTML page templates. The embedded, filesystem, and resolver loaders all
// satisfy it.
type AssetLoader interface {
	// LoadStyle returns the CSS for a named style (no .css extension).
	// Unknown styles yield ErrStyleNotFound; bad names ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the source of a named page template (no .html
	// extension); the renderer asks for "story" and "index". Unknown
	// templates yield ErrTemplateNotFound; bad names ErrInvalidAssetName.
	LoadTemplate(name string) (string, error)
}

package main

import (
	"errors"
	"os"

	ruby2html "github.com/alnah/go-ruby2html"
	"github.com/alnah/go-ruby2html/internal/config"
)

// Exit codes for the ruby2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadStory) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrInputDir) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ruby2html.ErrEmptyFallbackTitle) ||
		errors.Is(err, ruby2html.ErrUnknownFormat) ||
		errors.Is(err, ruby2html.ErrStyleNotFound) ||
		errors.Is(err, ruby2html.ErrTemplateNotFound) ||
		errors.Is(err, ruby2html.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}

package assets

import "fmt"

// ValidateAssetName checks that a style or template name can be used as a
// bare file stem. Names carry no extension and must not address other
// directories, so separators and dots are rejected outright.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch r {
		case '/', '\\', '.':
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

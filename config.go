package csstidy

import (
	"errors"
	"fmt"
)

// ErrConfig is returned for configurations with out of range options.
var ErrConfig = errors.New("invalid configuration")

// Config holds the optimisation options.
type Config struct {
	// PreserveCSS disables every optimisation.
	PreserveCSS bool `koanf:"preserve_css" yaml:"preserve_css"`

	// MergeSelectors merges rules with identical declarations when 1.
	MergeSelectors int `koanf:"merge_selectors" yaml:"merge_selectors"`

	DiscardInvalidSelectors bool `koanf:"discard_invalid_selectors" yaml:"discard_invalid_selectors"`

	// OptimiseShorthands is 0 to leave shorthands alone, 1 to dissolve and merge the box shorthands
	// (margin, padding, border-color, border-style, border-width) and 2 to handle background as well.
	OptimiseShorthands int `koanf:"optimise_shorthands" yaml:"optimise_shorthands"`

	CompressFontWeight bool `koanf:"compress_font-weight" yaml:"compress_font-weight"`
	CompressColors     bool `koanf:"compress_colors" yaml:"compress_colors"`
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		MergeSelectors:     1,
		OptimiseShorthands: 1,
		CompressFontWeight: true,
		CompressColors:     true,
	}
}

// Validate returns an error wrapping ErrConfig when an option is out of range.
func (c Config) Validate() error {
	if c.MergeSelectors < 0 || 1 < c.MergeSelectors {
		return fmt.Errorf("%w: merge_selectors must be 0 or 1, got %d", ErrConfig, c.MergeSelectors)
	}
	if c.OptimiseShorthands < 0 || 2 < c.OptimiseShorthands {
		return fmt.Errorf("%w: optimise_shorthands must be 0, 1 or 2, got %d", ErrConfig, c.OptimiseShorthands)
	}
	return nil
}

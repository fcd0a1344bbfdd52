package csstidy

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	test.T(t, config.PreserveCSS, false)
	test.T(t, config.MergeSelectors, 1)
	test.T(t, config.DiscardInvalidSelectors, false)
	test.T(t, config.OptimiseShorthands, 1)
	test.T(t, config.CompressFontWeight, true)
	test.T(t, config.CompressColors, true)
	test.T(t, config.Validate() == nil, true)
}

func TestConfigValidate(t *testing.T) {
	var configTests = []struct {
		merge, shorthands int
		valid             bool
	}{
		{0, 0, true},
		{1, 2, true},
		{2, 1, false},
		{-1, 1, false},
		{1, 3, false},
		{1, -1, false},
	}
	for _, tt := range configTests {
		config := DefaultConfig()
		config.MergeSelectors = tt.merge
		config.OptimiseShorthands = tt.shorthands
		err := config.Validate()
		test.T(t, err == nil, tt.valid, "validity must match")
		if err != nil {
			test.T(t, errors.Is(err, ErrConfig), true, "must wrap ErrConfig")
		}
	}
}

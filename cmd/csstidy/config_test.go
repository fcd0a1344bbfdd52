package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/csstidy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".csstidy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, csstidy.DefaultConfig(), config)

	config, err = loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, csstidy.DefaultConfig(), config)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "merge_selectors: 0\noptimise_shorthands: 2\ncompress_font-weight: false\n")
	config, err := loadConfig(path, nil)
	require.NoError(t, err)

	expected := csstidy.DefaultConfig()
	expected.MergeSelectors = 0
	expected.OptimiseShorthands = 2
	expected.CompressFontWeight = false
	assert.Equal(t, expected, config)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "optimise_shorthands: 2\ncompress_font-weight: false\ncompress_colors: false\n")
	t.Setenv("CSSTIDY_OPTIMISE_SHORTHANDS", "0")
	t.Setenv("CSSTIDY_COMPRESS_FONT_WEIGHT", "true")

	config, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, config.OptimiseShorthands, "env must override file")
	assert.True(t, config.CompressFontWeight, "env must override file")
	assert.False(t, config.CompressColors, "file must override defaults")

	config, err = loadConfig(path, map[string]any{"optimise_shorthands": 1, "compress_colors": true})
	require.NoError(t, err)
	assert.Equal(t, 1, config.OptimiseShorthands, "flags must override env")
	assert.True(t, config.CompressColors, "flags must override file")
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "merge_selectors: 5\n"), nil)
	assert.ErrorIs(t, err, csstidy.ErrConfig)

	_, err = loadConfig(writeConfig(t, "merge_selectors: [\n"), nil)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "merge_selectors", envKey("CSSTIDY_MERGE_SELECTORS"))
	assert.Equal(t, "compress_font-weight", envKey("CSSTIDY_COMPRESS_FONT_WEIGHT"))
	assert.Equal(t, "preserve_css", envKey("CSSTIDY_PRESERVE_CSS"))
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/csstidy"
)

const envPrefix = "CSSTIDY_"

// optionFlags maps command line flags to configuration keys.
var optionFlags = map[string]string{
	"preserve-css":              "preserve_css",
	"merge-selectors":           "merge_selectors",
	"discard-invalid-selectors": "discard_invalid_selectors",
	"optimise-shorthands":       "optimise_shorthands",
	"compress-font-weight":      "compress_font-weight",
	"compress-colors":           "compress_colors",
}

// loadConfig loads the optimiser options with precedence: flags > env > file > defaults.
// A missing configuration file is not an error.
func loadConfig(configPath string, flags map[string]any) (csstidy.Config, error) {
	k := koanf.New(".")

	// 1. Config file
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return csstidy.Config{}, fmt.Errorf("loading config file %s: %w", configPath, err)
			}
		}
	}

	// 2. Environment variables, CSSTIDY_MERGE_SELECTORS -> merge_selectors
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return csstidy.Config{}, fmt.Errorf("loading environment variables: %w", err)
	}

	// 3. Explicitly set flags
	for key, value := range flags {
		if err := k.Set(key, value); err != nil {
			return csstidy.Config{}, fmt.Errorf("setting flag %s: %w", key, err)
		}
	}

	config := csstidy.DefaultConfig()
	if err := k.Unmarshal("", &config); err != nil {
		return csstidy.Config{}, fmt.Errorf("%w: %v", csstidy.ErrConfig, err)
	}
	if err := config.Validate(); err != nil {
		return csstidy.Config{}, err
	}
	return config, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "font_weight", "font-weight", 1)
}

// setFlags returns the configuration keys and values of the option flags that were given on the command line.
func setFlags(f *argp.Argp, opts csstidy.Config) map[string]any {
	values := map[string]any{
		"preserve-css":              opts.PreserveCSS,
		"merge-selectors":           opts.MergeSelectors,
		"discard-invalid-selectors": opts.DiscardInvalidSelectors,
		"optimise-shorthands":       opts.OptimiseShorthands,
		"compress-font-weight":      opts.CompressFontWeight,
		"compress-colors":           opts.CompressColors,
	}
	flags := map[string]any{}
	for name, key := range optionFlags {
		if f.IsSet(name) {
			flags[key] = values[name]
		}
	}
	return flags
}

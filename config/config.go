// Package config provides configuration types and defaults for zhongwenanki.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"zhongwenanki/segment"
)

// Config holds all configuration options.
type Config struct {
	Segmenter string       `mapstructure:"segmenter" yaml:"segmenter"` // one of segment.Names()
	Phrases   string       `mapstructure:"phrases" yaml:"phrases"`     // YAML phrase overrides, optional
	Glossary  string       `mapstructure:"glossary" yaml:"glossary"`   // YAML word list for lookup, optional
	Cache     CacheConfig  `mapstructure:"cache" yaml:"cache"`
	Render    RenderConfig `mapstructure:"render" yaml:"render"`
	LogDir    string       `mapstructure:"log_dir" yaml:"log_dir"`
	Debug     bool         `mapstructure:"debug" yaml:"debug"`
	Workers   int          `mapstructure:"workers" yaml:"workers"`
}

// CacheConfig controls memoization of romanization lookups.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// RenderConfig controls the projections of an annotation.
type RenderConfig struct {
	Element         string `mapstructure:"element" yaml:"element"`
	ClassPrefix     string `mapstructure:"class_prefix" yaml:"class_prefix"`
	CharSeparator   string `mapstructure:"char_separator" yaml:"char_separator"`
	WordSeparator   string `mapstructure:"word_separator" yaml:"word_separator"`
	MarkupSeparator string `mapstructure:"markup_separator" yaml:"markup_separator"`
	Collapse        bool   `mapstructure:"collapse" yaml:"collapse"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Segmenter: segment.Gse,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Render: RenderConfig{
			Element:       "mark",
			ClassPrefix:   "tone-",
			WordSeparator: " ",
		},
		Workers: 4,
	}
}

// Validate checks values that cannot be repaired silently.
func (c Config) Validate() error {
	if !slices.Contains(segment.Names(), c.Segmenter) {
		return fmt.Errorf("unknown segmenter %q (want one of %v)", c.Segmenter, segment.Names())
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Render.Element == "" {
		return fmt.Errorf("render.element must not be empty")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled")
	}
	return nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	b, err := yaml.Marshal(Defaults())
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"zhongwenanki/segment"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gse", cfg.Segmenter)
	assert.Equal(t, "tone-", cfg.Render.ClassPrefix)
	assert.Equal(t, " ", cfg.Render.WordSeparator)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown segmenter", func(c *Config) { c.Segmenter = "jieba" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"empty element", func(c *Config) { c.Render.Element = "" }},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateAllowsZeroTTLWithoutCache(t *testing.T) {
	cfg := Defaults()
	cfg.Cache.Enabled = false
	cfg.Cache.TTL = 0
	assert.NoError(t, cfg.Validate())
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Config
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, Defaults().Segmenter, got.Segmenter)
	assert.Equal(t, Defaults().Render, got.Render)
}

func TestWriteDefaultKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("segmenter: uniseg\n"), 0o644))
	require.NoError(t, WriteDefault(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "segmenter: uniseg\n", string(b))
}

func TestValidateAcceptsEverySegmenter(t *testing.T) {
	for _, name := range segment.Names() {
		cfg := Defaults()
		cfg.Segmenter = name
		assert.NoError(t, cfg.Validate(), name)
	}
}

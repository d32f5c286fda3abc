package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Tasks.RequireDescription)
	assert.Zero(t, cfg.List.Limit)
}

func TestConfig_ValidationPolicy(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, ValidationPolicy{}, cfg.ValidationPolicy())

	cfg.Tasks.RequireDescription = true
	assert.Equal(t, ValidationPolicy{RequireDescription: true}, cfg.ValidationPolicy())
}

func TestGlobalConfigPath(t *testing.T) {
	got := GlobalConfigPath(filepath.FromSlash("/home/me/.config"))

	assert.Equal(t, filepath.FromSlash("/home/me/.config/lean/config.toml"), got)
}

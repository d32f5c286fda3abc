package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanwork/lean/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_FileMissing(t *testing.T) {
	loader := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_NoPath(t *testing.T) {
	cfg, err := NewLoaderWithPath("").Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Tasks.RequireDescription)
	assert.Zero(t, cfg.List.Limit)
}

func TestLoader_Load_AllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"

[tasks]
require_description = true

[list]
limit = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoaderWithPath(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Tasks.RequireDescription)
	assert.Equal(t, 20, cfg.List.Limit)
	assert.Equal(t, domain.ValidationPolicy{RequireDescription: true}, cfg.ValidationPolicy())
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nlimit = 5\n"), 0o600))

	cfg, err := NewLoaderWithPath(path).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, 5, cfg.List.Limit)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel = "), 0o600))

	_, err := NewLoaderWithPath(path).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestNewLoader_UsesXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	loader := NewLoader()

	assert.Equal(t, filepath.Join(configHome, "lean", "config.toml"), loader.Path())
}

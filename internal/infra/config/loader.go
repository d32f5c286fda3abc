// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leanwork/lean/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml (empty = defaults only)
}

// NewLoader creates a new Loader reading the global config file.
func NewLoader() *Loader {
	configHome := defaultConfigHome()
	if configHome == "" {
		return &Loader{}
	}
	return &Loader{path: domain.GlobalConfigPath(configHome)}
}

// NewLoaderWithPath creates a new Loader with a custom config file path.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// defaultConfigHome returns XDG_CONFIG_HOME, falling back to ~/.config.
func defaultConfigHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return configHome
}

// Path returns the config file path, or "" if none could be determined.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the configuration merged over the defaults.
// A missing config file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.path == "" {
		return base, nil
	}

	file, err := l.loadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, err
	}

	return mergeConfigs(base, file), nil
}

// loadFile reads and decodes a single TOML file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs merges two configs, with override taking precedence.
// Zero values in override keep the base value.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Tasks.RequireDescription {
		result.Tasks.RequireDescription = true
	}
	if override.List.Limit > 0 {
		result.List.Limit = override.List.Limit
	}
	return &result
}

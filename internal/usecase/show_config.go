package usecase

import (
	"context"
	"os"

	"github.com/leanwork/lean/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective *domain.Config    // Defaults merged with the config file
	File      domain.ConfigInfo // Global config file info
}

// ShowConfig displays the config file location and the effective configuration.
type ShowConfig struct {
	loader domain.ConfigLoader
	path   string
}

// NewShowConfig creates a new ShowConfig use case.
// path is the config file the loader reads.
func NewShowConfig(loader domain.ConfigLoader, path string) *ShowConfig {
	return &ShowConfig{loader: loader, path: path}
}

// Execute loads the configuration and reports where it came from.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}

	info := domain.ConfigInfo{Path: uc.path}
	if uc.path != "" {
		if _, statErr := os.Stat(uc.path); statErr == nil {
			info.Exists = true
		}
	}

	return &ShowConfigOutput{Effective: cfg, File: info}, nil
}

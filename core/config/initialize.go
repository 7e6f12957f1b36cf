package config

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir, leaving an existing
// configuration untouched, and loads the result.
func Initialize(fsys afero.Fs, dir string, logger *slog.Logger) (*Configuration, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch exists, err := afero.Exists(fsys, configPath); {
	case err != nil:
		return nil, err
	case exists:
		logger.Info("configuration already exists", "path", configPath)
	default:
		logger.Info("writing default configuration", "path", configPath)
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return Load(fsys, dir)
}

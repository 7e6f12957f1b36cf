package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. Fields missing from the
// file, or the whole file, fall back to the defaults.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	out := Default()
	out.configDir = path
	out.configFs = afero.NewBasePathFs(fsys, path)

	configContents, err := afero.ReadFile(out.configFs, ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(path, ConfigurationName), err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(path, ConfigurationName), err)
	}
	return out, nil
}

// Package config provides the build-configuration loader.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads pybundle.yaml from sourceDir when present and merges it over
// the default layout conventions. A missing file is not an error.
func (l *Loader) Load(sourceDir string) (domain.LayoutConfig, error) {
	cfg := domain.DefaultLayoutConfig()

	path := filepath.Join(sourceDir, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is the configured source directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.LayoutConfig{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.LayoutConfig{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Layout.InternalDir != "" {
		cfg.InternalDir = file.Layout.InternalDir
	}
	if file.Layout.EnvDir != "" {
		cfg.EnvDir = file.Layout.EnvDir
	}
	if file.Layout.LogsDir != "" {
		cfg.LogsDir = file.Layout.LogsDir
	}
	cfg.Excludes = append(cfg.Excludes, file.Excludes...)
	cfg.ScriptsDir = file.ScriptsDir

	l.logger.Info(fmt.Sprintf("loaded build configuration from %s", path))
	return cfg, nil
}

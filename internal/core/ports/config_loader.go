package ports

import "go.trai.ch/pybundle/internal/core/domain"

// ConfigLoader loads the optional build configuration for a source
// directory, falling back to defaults when no file is present.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(sourceDir string) (domain.LayoutConfig, error)
}

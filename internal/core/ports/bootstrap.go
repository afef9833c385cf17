package ports

import "go.trai.ch/pybundle/internal/core/domain"

// BootstrapGenerator renders the install-time artifacts into the
// internal-scripts directory.
//
//go:generate mockgen -source=bootstrap.go -destination=mocks/mock_bootstrap.go -package=mocks
type BootstrapGenerator interface {
	// WriteBootstrap renders the launcher script described by spec.
	WriteBootstrap(internalDir string, spec domain.BootstrapSpec) error

	// WritePathConfig writes the runtime search-path configuration derived
	// from the resolved runtime version.
	WritePathConfig(internalDir string, rv domain.RuntimeVersion) error

	// WriteSetupHelper writes the double-clickable wrapper that re-invokes
	// the platform setup script with an explicit install path.
	WriteSetupHelper(internalDir string, cfg domain.LayoutConfig) error
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pybundle/internal/adapters/archive"
	_ "go.trai.ch/pybundle/internal/adapters/bootstrap"
	_ "go.trai.ch/pybundle/internal/adapters/config"
	_ "go.trai.ch/pybundle/internal/adapters/fs"
	_ "go.trai.ch/pybundle/internal/adapters/iscc"
	_ "go.trai.ch/pybundle/internal/adapters/logger"
	_ "go.trai.ch/pybundle/internal/adapters/manifest"
	_ "go.trai.ch/pybundle/internal/adapters/metadata"
	// Register app nodes.
	_ "go.trai.ch/pybundle/internal/app"
)

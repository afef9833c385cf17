package ports

import "go.trai.ch/pybundle/internal/core/domain"

// LayoutBuilder constructs the staging directory tree and copies the
// application source into it. An existing root is deleted first; the build
// is destructive and idempotent, never additive.
//
//go:generate mockgen -source=layout.go -destination=mocks/mock_layout.go -package=mocks
type LayoutBuilder interface {
	Build(outDir string, app domain.SourceApplication, cfg domain.LayoutConfig) (domain.StagingLayout, error)

	// CopyInstallerScripts copies the platform setup scripts from scriptsDir
	// into the internal-scripts directory. Missing scripts are non-fatal.
	CopyInstallerScripts(internalDir, scriptsDir string) error
}

// PackageMarker ensures every directory containing source files under the
// application-code root is marked as an importable unit. Idempotent.
type PackageMarker interface {
	Mark(appDir string) error
}

// TreeHasher computes a content fingerprint of a directory tree.
type TreeHasher interface {
	HashTree(root string) (string, error)
}

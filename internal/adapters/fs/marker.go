package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Marker implements ports.PackageMarker. The copied tree must be loadable
// as a tree of packages regardless of how the original author organized it.
type Marker struct{}

// NewMarker creates a new Marker.
func NewMarker() *Marker {
	return &Marker{}
}

// Mark walks appDir and creates an empty marker file in every directory that
// contains at least one source file and lacks one. Running it twice yields
// the same marker set as running it once.
func (m *Marker) Mark(appDir string) error {
	return filepath.WalkDir(appDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(errors.Join(domain.ErrMarkerFailed, err), "path", path)
		}
		if !d.IsDir() {
			return nil
		}

		hasSource, err := containsSourceFiles(path)
		if err != nil {
			return err
		}
		if !hasSource {
			return nil
		}

		marker := filepath.Join(path, domain.PackageMarkerFileName)
		if _, err := os.Stat(marker); err == nil {
			return nil
		} else if !errors.Is(err, iofs.ErrNotExist) {
			return zerr.With(errors.Join(domain.ErrMarkerFailed, err), "path", marker)
		}

		if err := os.WriteFile(marker, nil, domain.FilePerm); err != nil {
			return zerr.With(errors.Join(domain.ErrMarkerFailed, err), "path", marker)
		}
		return nil
	})
}

func containsSourceFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, zerr.With(errors.Join(domain.ErrMarkerFailed, err), "path", dir)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".py") {
			return true, nil
		}
	}
	return false, nil
}

// Package archive produces the optional compressed snapshot of a staging
// layout.
package archive

import (
	"archive/zip"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Zipper implements ports.Archiver using a zip container.
type Zipper struct{}

// NewZipper creates a new Zipper.
func NewZipper() *Zipper {
	return &Zipper{}
}

// Archive compresses stagingRoot into outPath. Entry names are relative to
// the staging root's parent, so the root directory is the archive's single
// top-level entry and extracting it anywhere reproduces the layout verbatim.
func (z *Zipper) Archive(stagingRoot, outPath string) error {
	out, err := os.Create(outPath) //nolint:gosec // Path derives from the staging root
	if err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", outPath)
	}
	defer out.Close() //nolint:errcheck // Best effort close in defer

	zw := zip.NewWriter(out)
	parent := filepath.Dir(stagingRoot)

	err = filepath.WalkDir(stagingRoot, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", path)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return errors.Join(domain.ErrArchiveFailed, err)
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "entry", rel)
		}

		f, err := os.Open(path) //nolint:gosec // Path comes from the walked tree
		if err != nil {
			return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", path)
		}
		defer f.Close() //nolint:errcheck // Best effort close in defer

		if _, err := io.Copy(w, f); err != nil {
			return zerr.With(errors.Join(domain.ErrArchiveFailed, err), "path", path)
		}
		return nil
	})
	if err != nil {
		_ = zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return errors.Join(domain.ErrArchiveFailed, err)
	}
	return out.Close()
}

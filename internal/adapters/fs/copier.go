// Package fs provides file system adapters for staging layouts.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier copies directory trees while skipping excluded entries.
type Copier struct {
	excludes []glob.Glob
}

// NewCopier compiles the exclusion patterns into a Copier.
func NewCopier(patterns []string) (*Copier, error) {
	excludes := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrInvalidExcludePattern, err), "pattern", p)
		}
		excludes = append(excludes, g)
	}
	return &Copier{excludes: excludes}, nil
}

// CopyTree copies src into dst, creating dst. Entries whose base name
// matches an exclusion pattern are skipped, directories recursively.
func (c *Copier) CopyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(errors.Join(domain.ErrCopyFailed, err), "path", path)
		}

		if path != src && c.excluded(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Join(domain.ErrCopyFailed, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(errors.Join(domain.ErrCopyFailed, err), "path", target)
			}
			return nil
		}

		return copyFile(path, target)
	})
}

func (c *Copier) excluded(name string) bool {
	for _, g := range c.excludes {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from the walked source tree
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCopyFailed, err), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path derived from staging root
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCopyFailed, err), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(errors.Join(domain.ErrCopyFailed, err), "path", dst)
	}
	return out.Close()
}

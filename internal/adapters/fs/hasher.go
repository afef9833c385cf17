package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes a content fingerprint of a staging tree. The fingerprint
// is logged after assembly and lets tests verify the destructive-rebuild
// invariant cheaply.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashTree returns a deterministic XXHash fingerprint over every file's
// relative path and content, in sorted path order.
func (h *Hasher) HashTree(root string) (string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrFingerprintFailed, err), "root", root)
	}
	sort.Strings(files)

	digest := xxhash.New()
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", errors.Join(domain.ErrFingerprintFailed, err)
		}
		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0}) // Separator

		if err := hashFileInto(digest, path); err != nil {
			return "", err
		}
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func hashFileInto(digest *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from the walked tree
	if err != nil {
		return zerr.With(errors.Join(domain.ErrFingerprintFailed, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(errors.Join(domain.ErrFingerprintFailed, err), "path", path)
	}
	return nil
}

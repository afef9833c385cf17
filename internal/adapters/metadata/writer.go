// Package metadata serializes the build metadata record consumed by the
// installer compiler and the install-time scripts.
package metadata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultAppVersion is written when no version was declared.
const DefaultAppVersion = "1.0.0"

// Writer implements ports.MetadataWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes rec as one Key=Value pair per line, in a fixed key
// order. Missing optional fields are defaulted before write; there is no
// other conditional logic.
func (w *Writer) Write(internalDir string, rec domain.MetadataRecord) error {
	if rec.Version == "" {
		rec.Version = DefaultAppVersion
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "AppName=%s\n", rec.AppName)
	fmt.Fprintf(&sb, "AppFolder=%s\n", rec.AppFolder)
	fmt.Fprintf(&sb, "EntryFile=%s\n", rec.EntryFile)
	fmt.Fprintf(&sb, "Version=%s\n", rec.Version)
	fmt.Fprintf(&sb, "RuntimeVersion=%s\n", rec.RuntimeVersion)

	path := filepath.Join(internalDir, domain.MetadataFileName)
	if err := os.WriteFile(path, []byte(sb.String()), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", path)
	}
	return nil
}

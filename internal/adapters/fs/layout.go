package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// installerScripts are copied next to the generated bootstrap when present
// in the configured scripts directory.
var installerScripts = []string{"setup.ps1", "setup_gui.ps1"}

// LayoutBuilder implements ports.LayoutBuilder.
type LayoutBuilder struct {
	logger ports.Logger
}

// NewLayoutBuilder creates a new LayoutBuilder.
func NewLayoutBuilder(logger ports.Logger) *LayoutBuilder {
	return &LayoutBuilder{logger: logger}
}

// Build creates the staging tree for app under outDir and copies the source
// into it. An existing staging root is removed first, so a rebuild never
// carries stale artifacts. Copy failures abort with nothing useful left
// behind; callers must treat the root as invalid on error.
func (b *LayoutBuilder) Build(outDir string, app domain.SourceApplication, cfg domain.LayoutConfig) (domain.StagingLayout, error) {
	if _, err := os.Stat(app.Root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.StagingLayout{}, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "layout build aborted"), "path", app.Root)
		}
		return domain.StagingLayout{}, zerr.With(errors.Join(domain.ErrSourceNotFound, err), "path", app.Root)
	}

	copier, err := NewCopier(cfg.Excludes)
	if err != nil {
		return domain.StagingLayout{}, err
	}

	root := domain.StagingRoot(outDir, app.Name)
	if err := os.RemoveAll(root); err != nil {
		return domain.StagingLayout{}, zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", root)
	}

	internalDir := filepath.Join(root, cfg.InternalDir)
	if err := os.MkdirAll(internalDir, domain.DirPerm); err != nil {
		return domain.StagingLayout{}, zerr.With(errors.Join(domain.ErrStagingWriteFailed, err), "path", internalDir)
	}

	appFolder := app.AppFolder()
	appDir := filepath.Join(root, appFolder)
	if err := copier.CopyTree(app.Root, appDir); err != nil {
		return domain.StagingLayout{}, err
	}

	return domain.StagingLayout{
		Root:        root,
		InternalDir: internalDir,
		AppDir:      appDir,
		AppFolder:   appFolder,
	}, nil
}

// CopyInstallerScripts copies the platform setup scripts into the
// internal-scripts directory. A missing script is logged, not fatal, since
// the staging layout is still usable for direct compiler runs.
func (b *LayoutBuilder) CopyInstallerScripts(internalDir, scriptsDir string) error {
	if scriptsDir == "" {
		return nil
	}
	for _, name := range installerScripts {
		src := filepath.Join(scriptsDir, name)
		if _, err := os.Stat(src); err != nil {
			b.logger.Warn(fmt.Sprintf("installer script %s not found in %s, not copied", name, scriptsDir))
			continue
		}
		if err := copyFile(src, filepath.Join(internalDir, name)); err != nil {
			return err
		}
	}
	return nil
}

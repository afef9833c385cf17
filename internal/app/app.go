// Package app implements the application layer for pybundle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultEntryFile is the entry module assumed when none is declared.
const DefaultEntryFile = "core.py"

// DefaultAppVersion is the version recorded when none is declared.
const DefaultAppVersion = "1.0.0"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.VersionResolver
	layout       ports.LayoutBuilder
	marker       ports.PackageMarker
	bootstrap    ports.BootstrapGenerator
	metadata     ports.MetadataWriter
	hasher       ports.TreeHasher
	archiver     ports.Archiver
	compiler     ports.CompilerRunner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.VersionResolver,
	layout ports.LayoutBuilder,
	marker ports.PackageMarker,
	bootstrap ports.BootstrapGenerator,
	metadata ports.MetadataWriter,
	hasher ports.TreeHasher,
	archiver ports.Archiver,
	compiler ports.CompilerRunner,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		layout:       layout,
		marker:       marker,
		bootstrap:    bootstrap,
		metadata:     metadata,
		hasher:       hasher,
		archiver:     archiver,
		compiler:     compiler,
		logger:       log,
	}
}

// StageOptions configuration for the Stage method.
type StageOptions struct {
	// SourceDir is the application source tree to package.
	SourceDir string
	// AppName is the display name. Empty means the source directory's base name.
	AppName string
	// EntryFile is the entry module path relative to SourceDir.
	EntryFile string
	// Version is the declared application version.
	Version string
	// OutDir is where the staging root is created.
	OutDir string
	// Zip also produces a distributable archive next to the staging root.
	Zip bool
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	SourceDir string
	AppName   string
	EntryFile string
	Version   string
	// ScriptPath is the installer compiler script to compile.
	ScriptPath string
	// OutputName is the base name of the produced installer executable.
	// Empty derives it from the application name.
	OutputName string
	// CompilerPath overrides compiler discovery.
	CompilerPath string
}

// Stage assembles the installable staging tree for the given source and
// returns the staging root. The build is destructive: an existing root for
// the same application is replaced wholesale.
//
//nolint:cyclop // orchestration function
func (a *App) Stage(ctx context.Context, opts StageOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sourceDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve source directory")
	}
	if _, err := os.Stat(sourceDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "staging aborted"), "path", sourceDir)
		}
		return "", zerr.With(errors.Join(domain.ErrSourceNotFound, err), "path", sourceDir)
	}

	cfg, err := a.configLoader.Load(sourceDir)
	if err != nil {
		return "", err
	}

	source := domain.SourceApplication{
		Root:      sourceDir,
		Name:      opts.AppName,
		EntryFile: opts.EntryFile,
		Version:   opts.Version,
	}
	if source.Name == "" {
		source.Name = filepath.Base(sourceDir)
	}
	if source.EntryFile == "" {
		source.EntryFile = DefaultEntryFile
	}
	if source.Version == "" {
		source.Version = DefaultAppVersion
	}

	rv := a.resolver.Resolve(filepath.Join(sourceDir, domain.ManifestFileName))

	a.logger.Info(fmt.Sprintf("staging %s %s (runtime %s)", source.Name, source.Version, rv.Version))

	layout, err := a.layout.Build(opts.OutDir, source, cfg)
	if err != nil {
		return "", err
	}

	if err := a.layout.CopyInstallerScripts(layout.InternalDir, cfg.ScriptsDir); err != nil {
		return "", err
	}

	if err := a.metadata.Write(layout.InternalDir, domain.MetadataRecord{
		AppName:        source.Name,
		AppFolder:      layout.AppFolder,
		EntryFile:      source.EntryFile,
		Version:        source.Version,
		RuntimeVersion: rv.Version,
	}); err != nil {
		return "", err
	}

	if err := a.bootstrap.WriteBootstrap(layout.InternalDir, domain.BootstrapSpec{
		AppFolder:         layout.AppFolder,
		EntryModule:       domain.EntryModulePath(source.EntryFile),
		EnvDir:            cfg.EnvDir,
		LogsDir:           cfg.LogsDir,
		InstallRootEnvVar: domain.InstallRootEnvVar(layout.AppFolder),
	}); err != nil {
		return "", err
	}
	if err := a.bootstrap.WritePathConfig(layout.InternalDir, rv); err != nil {
		return "", err
	}
	if err := a.bootstrap.WriteSetupHelper(layout.InternalDir, cfg); err != nil {
		return "", err
	}

	if err := a.marker.Mark(layout.AppDir); err != nil {
		return "", err
	}

	fingerprint, err := a.hasher.HashTree(layout.Root)
	if err != nil {
		return "", err
	}
	a.logger.Info(fmt.Sprintf("staged %s at %s (fingerprint %s)", source.Name, layout.Root, fingerprint))

	if opts.Zip {
		archivePath := layout.Root + ".zip"
		if err := a.archiver.Archive(layout.Root, archivePath); err != nil {
			return "", err
		}
		a.logger.Info(fmt.Sprintf("archived %s", archivePath))
	}

	return layout.Root, nil
}

// Build stages the application into a temporary directory and hands the
// result to the installer compiler. The compiler is located before any
// staging work so a missing toolchain fails fast.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	compiler, err := a.compiler.Find(opts.CompilerPath)
	if err != nil {
		return err
	}

	scriptPath, err := filepath.Abs(opts.ScriptPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve installer script path")
	}
	if _, err := os.Stat(scriptPath); err != nil {
		return zerr.With(errors.Join(domain.ErrScriptNotFound, err), "path", scriptPath)
	}

	tmpDir, err := os.MkdirTemp("", "pybundle-*")
	if err != nil {
		return errors.Join(domain.ErrStagingWriteFailed, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			a.logger.Warn(fmt.Sprintf("failed to clean up %s: %v", tmpDir, rmErr))
		}
	}()

	stagingRoot, err := a.Stage(ctx, StageOptions{
		SourceDir: opts.SourceDir,
		AppName:   opts.AppName,
		EntryFile: opts.EntryFile,
		Version:   opts.Version,
		OutDir:    tmpDir,
	})
	if err != nil {
		return err
	}

	appName := opts.AppName
	if appName == "" {
		appName = filepath.Base(stagingRoot)
		appName = strings.TrimSuffix(appName, "_pkg")
	}
	version := opts.Version
	if version == "" {
		version = DefaultAppVersion
	}
	outName := opts.OutputName
	if outName == "" {
		outName = domain.SanitizeName(appName) + "_Setup"
	} else {
		outName = strings.TrimSuffix(outName, filepath.Ext(outName))
	}

	a.logger.Info(fmt.Sprintf("compiling installer %s with %s", outName, compiler))

	return a.compiler.Compile(ctx, compiler, scriptPath, domain.CompileDefines{
		BuildDir:   stagingRoot,
		AppName:    appName,
		AppVersion: version,
		OutName:    outName,
	})
}

// Package domain holds the core types of the staging engine.
package domain

import (
	"fmt"
	"strings"
)

// SourceApplication describes the application being packaged.
// It is an immutable input to a staging build.
type SourceApplication struct {
	// Root is the absolute path of the application source tree.
	Root string
	// Name is the declared display name.
	Name string
	// EntryFile is the entry module path relative to Root, e.g. "core.py".
	EntryFile string
	// Version is the declared semantic version.
	Version string
}

// AppFolder returns the name of the application-code sub-directory inside
// the staging root.
func (a SourceApplication) AppFolder() string {
	return SanitizeName(a.Name)
}

// RuntimeVersion is a resolved runtime version plus a flag recording whether
// it came from the manifest or from the policy default.
type RuntimeVersion struct {
	Version   string
	IsDefault bool
}

// MajorMinor returns the compact major+minor form used in runtime archive
// names, e.g. "311" for "3.11.2".
func (v RuntimeVersion) MajorMinor() string {
	parts := strings.Split(v.Version, ".")
	if len(parts) >= 2 {
		return parts[0] + parts[1]
	}
	return strings.ReplaceAll(v.Version, ".", "")
}

// StagingLayout is the on-disk tree produced by a build.
type StagingLayout struct {
	// Root is the staging root directory.
	Root string
	// InternalDir is the generated-scripts sub-directory inside Root.
	InternalDir string
	// AppDir is the application-code sub-directory inside Root.
	AppDir string
	// AppFolder is the base name of AppDir.
	AppFolder string
}

// MetadataRecord is the flat key/value record describing a build. It is
// consumed by the installer compiler and by the install-time scripts.
type MetadataRecord struct {
	AppName        string
	AppFolder      string
	EntryFile      string
	Version        string
	RuntimeVersion string
}

// BootstrapSpec describes what the generated launcher must do, independent
// of how it is expressed textually.
type BootstrapSpec struct {
	// AppFolder is the application-code directory name and package name.
	AppFolder string
	// EntryModule is the dotted module path executed as the entry point.
	EntryModule string
	// EnvDir is the bundled runtime directory name.
	EnvDir string
	// LogsDir is the failure-log directory name.
	LogsDir string
	// InstallRootEnvVar is exported with the install root as its value.
	InstallRootEnvVar string
}

// CompileDefines are the build-time symbols passed to the installer compiler.
type CompileDefines struct {
	BuildDir   string
	AppName    string
	AppVersion string
	OutName    string
}

// CompilerExitError reports a non-zero exit from the installer compiler.
// The code is propagated verbatim as the build's own exit code.
type CompilerExitError struct {
	Code int
}

func (e *CompilerExitError) Error() string {
	return fmt.Sprintf("installer compiler exited with code %d", e.Code)
}

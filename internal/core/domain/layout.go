package domain

import (
	"path/filepath"
	"strings"
)

const (
	// InternalDirName is the name of the staging sub-directory that holds
	// generated install scripts and metadata.
	InternalDirName = "_internal"

	// EnvDirName is the name of the bundled Python runtime directory
	// inside an installed application root.
	EnvDirName = "Env"

	// LogsDirName is the name of the log directory inside an installed
	// application root.
	LogsDirName = "logs"

	// MetadataFileName is the name of the generated metadata record.
	MetadataFileName = "metadata.txt"

	// BootstrapFileName is the name of the generated launcher script.
	BootstrapFileName = "boot.py"

	// PathConfigFileName is the name of the generated runtime search-path file.
	PathConfigFileName = "custom_pth.txt"

	// SetupHelperFileName is the name of the double-clickable setup wrapper.
	SetupHelperFileName = "setup.bat"

	// ManifestFileName is the dependency manifest read by the version resolver.
	ManifestFileName = "requirements.txt"

	// PackageMarkerFileName marks a directory as an importable Python package.
	PackageMarkerFileName = "__init__.py"

	// ConfigFileName is the optional build configuration file.
	ConfigFileName = "pybundle.yaml"

	// InstallRootEnvSuffix is appended to the upper-cased application folder
	// name to form the environment variable exported by the bootstrap script.
	InstallRootEnvSuffix = "_INSTALL_ROOT"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExcludes are transient artifacts never copied into a staging tree.
var DefaultExcludes = []string{"__pycache__", "*.pyc", ".git", ".vscode"}

// LayoutConfig carries the directory-name conventions and copy exclusions of
// a staging build. It is an explicit value passed into the builders so the
// engine can target different layout conventions without recompilation.
type LayoutConfig struct {
	// InternalDir is the staging sub-directory for generated scripts.
	InternalDir string
	// EnvDir is the bundled runtime directory name referenced by boot.py.
	EnvDir string
	// LogsDir is the log directory name referenced by boot.py.
	LogsDir string
	// Excludes are glob patterns skipped when copying the source tree.
	// They always include DefaultExcludes.
	Excludes []string
	// ScriptsDir is where the platform setup scripts are copied from.
	// Empty means no scripts are copied.
	ScriptsDir string
}

// DefaultLayoutConfig returns the layout conventions used when no
// configuration file is present.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		InternalDir: InternalDirName,
		EnvDir:      EnvDirName,
		LogsDir:     LogsDirName,
		Excludes:    append([]string(nil), DefaultExcludes...),
	}
}

// SanitizeName maps an application display name to a filesystem- and
// import-safe folder name. Spaces become underscores.
func SanitizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// StagingRoot returns the deterministic staging root for an application.
// The same (outDir, appName) pair always yields the same root.
func StagingRoot(outDir, appName string) string {
	return filepath.Join(outDir, SanitizeName(appName)+"_pkg")
}

// EntryModulePath converts an entry-file relative path into a dotted module
// path: both separator styles become dots and the extension is dropped.
// "sub/launch.py" becomes "sub.launch".
func EntryModulePath(entryFile string) string {
	p := strings.ReplaceAll(entryFile, "\\", ".")
	p = strings.ReplaceAll(p, "/", ".")
	if ext := filepath.Ext(p); ext != "" {
		p = strings.TrimSuffix(p, ext)
	}
	return p
}

// InstallRootEnvVar returns the environment variable name the bootstrap
// script exports so the launched application can find its install root.
func InstallRootEnvVar(appFolder string) string {
	return strings.ToUpper(appFolder) + InstallRootEnvSuffix
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when the application source directory does not exist.
	ErrSourceNotFound = zerr.New("application source directory not found")

	// ErrCompilerNotFound is returned when the installer compiler executable cannot be located.
	ErrCompilerNotFound = zerr.New("installer compiler not found")

	// ErrScriptNotFound is returned when the installer script passed to the compiler does not exist.
	ErrScriptNotFound = zerr.New("installer script not found")

	// ErrCopyFailed is returned when copying the source tree into the staging layout fails.
	ErrCopyFailed = zerr.New("failed to copy source tree")

	// ErrStagingWriteFailed is returned when a generated artifact cannot be written into the staging tree.
	ErrStagingWriteFailed = zerr.New("failed to write staging artifact")

	// ErrRenderFailed is returned when a script template cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render script template")

	// ErrMarkerFailed is returned when a package marker file cannot be created.
	ErrMarkerFailed = zerr.New("failed to create package marker")

	// ErrArchiveFailed is returned when the staging archive cannot be produced.
	ErrArchiveFailed = zerr.New("failed to create package archive")

	// ErrCompilerFailed is returned when the installer compiler invocation fails.
	ErrCompilerFailed = zerr.New("installer compiler invocation failed")

	// ErrConfigReadFailed is returned when the build configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read build configuration")

	// ErrConfigParseFailed is returned when the build configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse build configuration")

	// ErrInvalidExcludePattern is returned when a copy-exclusion glob does not compile.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrFingerprintFailed is returned when the staging tree fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint staging tree")
)

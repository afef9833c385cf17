// Package iscc locates and invokes the Inno Setup installer compiler.
package iscc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/pybundle/internal/core/domain"
	"go.trai.ch/pybundle/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// CompilerName is the well-known executable name searched on PATH.
	CompilerName = "ISCC.exe"

	// DefaultInstallPath is the compiler's default install location.
	DefaultInstallPath = `C:\Program Files (x86)\Inno Setup 6\ISCC.exe`
)

// Runner implements ports.CompilerRunner over os/exec.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner streaming compiler output to the process
// streams.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the compiler's output streams. Used for testing.
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// Find resolves the compiler executable. Resolution order: the explicit
// override if given, then a PATH search for the well-known name, then the
// default install path. Failure here is fatal pre-build: nothing has been
// written yet.
func (r *Runner) Find(override string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err == nil {
			return override, nil
		}
		return "", zerr.With(zerr.Wrap(domain.ErrCompilerNotFound, "override path does not exist"), "override", override)
	}

	if found, err := exec.LookPath(CompilerName); err == nil {
		return found, nil
	}

	if _, err := os.Stat(DefaultInstallPath); err == nil {
		return DefaultInstallPath, nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrCompilerNotFound, "not on PATH and not at the default install path"), "name", CompilerName)
}

// Compile invokes the compiler on the installer script with the build-time
// defines. The compiler's exit code is preserved in the error chain so the
// build can propagate it verbatim.
func (r *Runner) Compile(ctx context.Context, compiler, scriptPath string, d domain.CompileDefines) error {
	args := []string{
		scriptPath,
		"/DBuildDir=" + d.BuildDir,
		"/DAppName=" + d.AppName,
		"/DAppVer=" + d.AppVersion,
		"/DOutName=" + d.OutName,
	}

	r.logger.Info(fmt.Sprintf("running %s %s", compiler, scriptPath))

	cmd := exec.CommandContext(ctx, compiler, args...) //nolint:gosec // Compiler path resolved by Find
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errors.Join(domain.ErrCompilerFailed, &domain.CompilerExitError{Code: exitErr.ExitCode()})
		}
		return zerr.With(errors.Join(domain.ErrCompilerFailed, err), "compiler", compiler)
	}
	return nil
}

package ports

import (
	"context"

	"go.trai.ch/pybundle/internal/core/domain"
)

// CompilerRunner locates and invokes the external installer compiler.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type CompilerRunner interface {
	// Find resolves the compiler executable: the override if given, then a
	// well-known name search, then the well-known default install path.
	Find(override string) (string, error)

	// Compile invokes the compiler on the installer script with the given
	// build-time defines. A non-zero exit is reported as a
	// domain.CompilerExitError in the error chain.
	Compile(ctx context.Context, compiler, scriptPath string, defines domain.CompileDefines) error
}

// Package main is the entry point for the pybundle packaging tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pybundle/cmd/pybundle/commands"
	"go.trai.ch/pybundle/internal/app"
	"go.trai.ch/pybundle/internal/core/domain"
	_ "go.trai.ch/pybundle/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// No logger yet when initialization fails, write to stderr directly
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		// The installer compiler's own exit code is passed through so
		// calling scripts can distinguish its failure modes.
		var exitErr *domain.CompilerExitError
		if errors.As(err, &exitErr) && exitErr.Code != 0 {
			return exitErr.Code
		}
		return 1
	}
	return 0
}

// Package engine invokes the external checking engine against one
// configuration source at a time and reports the outcome.
package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/avelaur/hookchain/pkg/resolver"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=engine.go -destination=mockengine.gen.go -package=engine

// Outcome is the result of one engine invocation against one source.
type Outcome struct {
	Source   resolver.ConfigSource
	ExitCode int
}

// Succeeded reports whether the invocation passed.
func (o Outcome) Succeeded() bool {
	return o.ExitCode == 0
}

// Engine interface provides checking engine invocation.
type Engine interface {
	// Invoke runs the checking engine against source, forwarding hookArgs
	// unchanged, and blocks until it terminates. A nonzero engine exit is a
	// normal Outcome, not an error; errors are reserved for the engine being
	// missing (ErrEngineNotFound) or unstartable (ErrEngineStart).
	Invoke(source resolver.ConfigSource, hookArgs []string) (Outcome, error)
}

type realEngine struct {
	fs     fs.FS
	config *config.Config
	logger logger.Logger
}

// NewEngineParams contains parameters for creating a new Engine instance.
type NewEngineParams struct {
	FS     fs.FS
	Config *config.Config
	Logger logger.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) Engine {
	return &realEngine{
		fs:     params.FS,
		config: params.Config,
		logger: params.Logger,
	}
}

// Invoke runs the checking engine against source.
func (e *realEngine) Invoke(source resolver.ConfigSource, hookArgs []string) (Outcome, error) {
	enginePath, err := e.fs.Which(e.config.Engine)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %s", ErrEngineNotFound, e.config.Engine)
	}

	args := []string{
		"--hook-type=" + e.config.HookType,
		"--hook-dir=" + e.config.HooksDir,
		"--config=" + source.Path,
		"--",
	}
	args = append(args, hookArgs...)

	cmd := exec.Command(enginePath, args...)
	// The engine owns its diagnostics; never capture or redirect them
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Outcome{}, fmt.Errorf("%w: %w", ErrEngineStart, err)
		}
		outcome := Outcome{Source: source, ExitCode: exitErr.ExitCode()}
		e.logger.Logf("engine %s failed for %s source %s (exit %d)",
			e.config.Engine, source.Scope, source.Path, outcome.ExitCode)
		return outcome, nil
	}

	e.logger.Logf("engine %s passed for %s source %s", e.config.Engine, source.Scope, source.Path)
	return Outcome{Source: source, ExitCode: 0}, nil
}

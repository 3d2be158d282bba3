// Package legacy models the hook that occupied the slot before this
// dispatcher took over. The dispatcher does not own it: it predates
// installation, must survive uninstallation, and always gets the last word of
// a run.
package legacy

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=legacy.go -destination=mocklegacy.gen.go -package=legacy

// Hook interface provides the optional pre-existing hook capability.
type Hook interface {
	// Present reports whether a runnable pre-existing hook exists. Files
	// without an execute bit count as absent, matching how git treats hooks.
	Present() (bool, error)

	// Run executes the pre-existing hook with hookArgs, blocking until it
	// terminates, and returns its exit code.
	Run(hookArgs []string) (int, error)
}

type realHook struct {
	fs     fs.FS
	git    git.Git
	config *config.Config
	logger logger.Logger
}

// NewHookParams contains parameters for creating a new Hook instance.
type NewHookParams struct {
	FS     fs.FS
	Git    git.Git
	Config *config.Config
	Logger logger.Logger
}

// NewHook creates a new Hook instance for the repository the process runs in.
func NewHook(params NewHookParams) Hook {
	return &realHook{
		fs:     params.FS,
		git:    params.Git,
		config: params.Config,
		logger: params.Logger,
	}
}

// locate returns the legacy hook path inside the current repository's .git
// directory, or "" when the process does not run inside a repository.
func (h *realHook) locate() (string, error) {
	workDir, err := h.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHookCheck, err)
	}

	gitDir, err := h.git.GitDir(workDir)
	if err != nil {
		// Outside a repository there is nothing to delegate to
		return "", nil
	}

	return filepath.Join(gitDir, "hooks", h.config.HookType), nil
}

// Present reports whether a runnable pre-existing hook exists.
func (h *realHook) Present() (bool, error) {
	hookPath, err := h.locate()
	if err != nil || hookPath == "" {
		return false, err
	}

	exists, err := h.fs.Exists(hookPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHookCheck, err)
	}
	if !exists {
		return false, nil
	}

	executable, err := h.fs.IsExecutable(hookPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrHookCheck, err)
	}

	return executable, nil
}

// Run executes the pre-existing hook and returns its exit code.
func (h *realHook) Run(hookArgs []string) (int, error) {
	hookPath, err := h.locate()
	if err != nil {
		return 1, err
	}
	if hookPath == "" {
		return 1, ErrHookMissing
	}

	cmd := exec.Command(hookPath, hookArgs...)
	// The legacy hook keeps its original I/O behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 1, fmt.Errorf("%w: %w", ErrHookStart, err)
		}
		h.logger.Logf("pre-existing hook %s failed (exit %d)", hookPath, exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}

	h.logger.Logf("pre-existing hook %s passed", hookPath)
	return 0, nil
}

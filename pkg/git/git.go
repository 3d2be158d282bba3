// Package git provides the Git command executions needed for hook
// installation and legacy hook discovery.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mockgit.gen.go -package=git

// Git interface provides Git command execution capabilities.
type Git interface {
	// ConfigGet executes `git config --get <key>` in specified directory.
	ConfigGet(workDir, key string) (string, error)

	// ConfigSetGlobal executes `git config --global <key> <value>`.
	ConfigSetGlobal(key, value string) error

	// ConfigUnsetGlobal executes `git config --global --unset <key>`.
	ConfigUnsetGlobal(key string) error

	// GitDir returns the absolute path of the .git directory for the repository
	// containing workDir.
	GitDir(workDir string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}

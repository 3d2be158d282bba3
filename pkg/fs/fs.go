// Package fs provides the file system operations needed for hook
// configuration discovery and installation.
package fs

import (
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mockfs.gen.go -package=fs

// FS interface provides file system operations for configuration source
// discovery and hook installation.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsExecutable checks if the file at the given path has an execute bit set.
	IsExecutable(path string) (bool, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CreateFileWithContent creates a file with content, overwriting if present.
	CreateFileWithContent(path string, content []byte, perm os.FileMode) error

	// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
	CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}

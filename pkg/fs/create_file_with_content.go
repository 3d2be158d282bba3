package fs

import (
	"os"
	"path/filepath"
)

// CreateFileWithContent creates a file with content, overwriting if present.
func (f *realFS) CreateFileWithContent(path string, content []byte, perm os.FileMode) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := f.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, perm); err != nil {
		return err
	}

	// os.WriteFile does not update permissions on an existing file
	return os.Chmod(path, perm)
}

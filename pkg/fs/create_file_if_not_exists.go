package fs

import "os"

// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
func (f *realFS) CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error {
	// Check if file already exists
	exists, err := f.Exists(filename)
	if err != nil {
		return err
	}

	if exists {
		return nil // File already exists, nothing to do
	}

	return f.CreateFileWithContent(filename, initialContent, perm)
}

package fs

import "os"

// Getwd returns the current working directory.
func (f *realFS) Getwd() (string, error) {
	return os.Getwd()
}

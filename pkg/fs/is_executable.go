package fs

import "os"

// IsExecutable checks if the file at the given path has an execute bit set.
// Git itself skips hook files without one, so callers treat such files as absent.
func (f *realFS) IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}
	return info.Mode()&0111 != 0, nil
}

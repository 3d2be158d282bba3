//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	// Test with an existing file
	existingFile := filepath.Join(tmpDir, "existing.txt")
	err := os.WriteFile(existingFile, []byte("content"), 0644)
	assert.NoError(t, err)

	exists, err := fs.Exists(existingFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test with an existing directory
	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test with a non-existing path
	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.txt"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

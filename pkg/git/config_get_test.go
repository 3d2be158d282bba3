//go:build integration

package git

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to init test repo: %v (%s)", err, string(output))
	}

	return dir
}

func TestGit_ConfigGet(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	// Set a local config value directly
	cmd := exec.Command("git", "config", "user.name", "Test User")
	cmd.Dir = dir
	err := cmd.Run()
	assert.NoError(t, err)

	value, err := git.ConfigGet(dir, "user.name")
	assert.NoError(t, err)
	assert.Equal(t, "Test User", value)

	// Missing keys report an empty value, not an error
	value, err = git.ConfigGet(dir, "hookchain.does-not-exist")
	assert.NoError(t, err)
	assert.Empty(t, value)
}

func TestGit_GitDir(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	gitDir, err := git.GitDir(dir)
	assert.NoError(t, err)

	info, err := os.Stat(gitDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Outside a repository
	_, err = git.GitDir(t.TempDir())
	assert.Error(t, err)
}

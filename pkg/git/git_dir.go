package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitDir returns the absolute path of the .git directory for the repository
// containing workDir.
func (g *realGit) GitDir(workDir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = workDir

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w (command: git rev-parse --git-dir)", err)
	}

	gitDir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(gitDir) {
		// rev-parse reports the path relative to workDir (usually ".git")
		gitDir = filepath.Join(workDir, gitDir)
	}

	return gitDir, nil
}

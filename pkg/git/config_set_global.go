package git

import (
	"fmt"
	"os/exec"
)

// ConfigSetGlobal executes `git config --global <key> <value>`.
func (g *realGit) ConfigSetGlobal(key, value string) error {
	cmd := exec.Command("git", "config", "--global", key, value)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git command failed: %w (command: git config --global %s %s, output: %s)",
			err, key, value, string(output))
	}

	return nil
}

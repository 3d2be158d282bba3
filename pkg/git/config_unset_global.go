package git

import (
	"errors"
	"fmt"
	"os/exec"
)

// ConfigUnsetGlobal executes `git config --global --unset <key>`.
// Unsetting a key that is not set is not an error, so the operation stays
// idempotent.
func (g *realGit) ConfigUnsetGlobal(key string) error {
	cmd := exec.Command("git", "config", "--global", "--unset", key)

	output, err := cmd.CombinedOutput()
	if err != nil {
		// git exits 5 when the key to unset does not exist
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 5 {
			return nil
		}
		return fmt.Errorf("git command failed: %w (command: git config --global --unset %s, output: %s)",
			err, key, string(output))
	}

	return nil
}

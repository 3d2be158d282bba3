package installer

import "fmt"

// Uninstall unsets core.hooksPath. Files written by Install stay in place.
func (i *realInstaller) Uninstall() error {
	current, err := i.Git.ConfigGet(".", "core.hooksPath")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHooksPathUnset, err)
	}

	// Respect a hooks path some other tool has taken over since
	if current != "" && current != i.Config.HooksDir {
		i.Logger.Logf("core.hooksPath points to %s, not %s; leaving it alone", current, i.Config.HooksDir)
		return nil
	}

	if current == "" {
		// Already uninstalled
		return nil
	}

	i.VerbosePrint("unsetting core.hooksPath")
	if err := i.Git.ConfigUnsetGlobal("core.hooksPath"); err != nil {
		return fmt.Errorf("%w: %w", ErrHooksPathUnset, err)
	}

	return nil
}

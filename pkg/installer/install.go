package installer

import (
	"fmt"
	"path/filepath"
)

const globalSourceTemplate = `# hookchain global configuration source.
# Checks listed here run for every commit in every repository, before any
# project-level configuration. The file is passed verbatim to the checking
# engine; see the engine's documentation for the schema.
repos: []
`

// shimContent is the executable written into the hooks directory. Git invokes
// it through core.hooksPath; it hands every argument to the dispatcher.
func shimContent() string {
	return "#!/bin/sh\nexec hookchain run -- \"$@\"\n"
}

// Install places the hook shim, flips core.hooksPath, seeds the global
// source if absent, and verifies the engine is reachable.
func (i *realInstaller) Install(opts InstallOpts) error {
	// (a) hook shim at the slot
	shimPath := filepath.Join(i.Config.HooksDir, i.Config.HookType)
	i.VerbosePrint("writing hook shim: %s", shimPath)
	if err := i.FS.CreateFileWithContent(shimPath, []byte(shimContent()), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrShimWrite, err)
	}

	// (b) point git at the hooks directory
	i.VerbosePrint("setting core.hooksPath to %s", i.Config.HooksDir)
	if err := i.Git.ConfigSetGlobal("core.hooksPath", i.Config.HooksDir); err != nil {
		return fmt.Errorf("%w: %w", ErrHooksPathSet, err)
	}

	// (c) seed the global source, never overwriting user content
	if err := i.FS.CreateFileIfNotExists(i.Config.GlobalSource, []byte(globalSourceTemplate), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrGlobalSourceSeed, err)
	}

	// (d) the engine is a runtime dependency, not an install-time one, so an
	// unreachable engine is only a warning by default
	if _, err := i.FS.Which(i.Config.Engine); err != nil {
		if opts.Strict {
			return fmt.Errorf("%w: %s", ErrEngineUnreachable, i.Config.Engine)
		}
		i.Logger.Logf("warning: checking engine %q not found on PATH; hooks will fail until it is installed", i.Config.Engine)
	}

	return nil
}

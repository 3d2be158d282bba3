// Package installer wires the dispatcher into git: it writes the hook shim,
// points core.hooksPath at it, and seeds the global configuration source.
// Uninstalling reverts the core.hooksPath setting only; installed files are
// deliberately left in place.
package installer

import (
	"github.com/avelaur/hookchain/internal/base"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=installer.go -destination=mockinstaller.gen.go -package=installer

// InstallOpts contains options for the Install operation.
type InstallOpts struct {
	// Strict makes an unreachable checking engine a failure instead of a
	// warning.
	Strict bool
}

// Installer interface provides hook installation and removal.
type Installer interface {
	// Install places the hook shim, flips core.hooksPath, seeds the global
	// source if absent, and verifies the engine is reachable.
	Install(opts InstallOpts) error

	// Uninstall unsets core.hooksPath. Files written by Install stay: a
	// pre-existing hook and the configuration sources must survive.
	Uninstall() error
}

type realInstaller struct {
	*base.Base
}

// NewInstallerParams contains parameters for creating a new Installer instance.
type NewInstallerParams struct {
	Base *base.Base
}

// NewInstaller creates a new Installer instance.
func NewInstaller(params NewInstallerParams) Installer {
	return &realInstaller{
		Base: params.Base,
	}
}

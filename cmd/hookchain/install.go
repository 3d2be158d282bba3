package main

import (
	"github.com/avelaur/hookchain/internal/base"
	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/installer"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/spf13/cobra"
)

var strict bool

func createInstallCmd() *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install [--strict]",
		Short: "Install the dispatcher into the git hook slot",
		Long: `Write the hook shim, point core.hooksPath at it, and seed the global ` +
			`configuration source if it does not exist yet.

Flags:
  --strict      Fail when the checking engine is not reachable on PATH`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()
			return buildInstaller(cfg).Install(installer.InstallOpts{Strict: strict})
		},
	}

	installCmd.Flags().BoolVar(&strict, "strict", false, "Fail when the checking engine is not reachable on PATH")

	return installCmd
}

// buildInstaller assembles the installer with real collaborators.
func buildInstaller(cfg *config.Config) installer.Installer {
	var diagLogger logger.Logger = logger.NewStderrLogger()
	if quiet {
		diagLogger = logger.NewNoopLogger()
	}

	return installer.NewInstaller(installer.NewInstallerParams{
		Base: base.NewBase(base.NewBaseParams{
			FS:      fs.NewFS(),
			Git:     git.NewGit(),
			Config:  cfg,
			Logger:  diagLogger,
			Verbose: verbose,
		}),
	})
}

package main

import (
	"github.com/spf13/cobra"
)

func createUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Detach the dispatcher from the git hook slot",
		Long: `Unset core.hooksPath so git goes back to per-repository hooks. ` +
			`Installed files (the hook shim and the configuration sources) are left in ` +
			`place, as is any pre-existing hook.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()
			return buildInstaller(cfg).Uninstall()
		},
	}
}

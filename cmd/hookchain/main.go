// Package main provides the command-line interface for the hookchain
// dispatcher.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".hookchain", "config.yaml")
}

// loadConfig loads the dispatcher configuration, falling back to defaults.
// A hook run must never be blocked by a missing or broken dispatcher config,
// so only an invalid explicit --config path is fatal.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}

	if configPath != "" {
		cfg, err := config.NewManager().LoadConfig(path)
		if err != nil {
			log.Fatalf("Failed to load configuration from %s: %v", path, err)
		}
		return cfg
	}

	cfg, err := config.LoadConfigWithFallback(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "hookchain",
		Short: "hookchain - pre-commit hook chaining dispatcher",
		Long: `A dispatcher for the git pre-commit hook slot: it runs an external ` +
			`checking engine against the global and project configuration sources, ` +
			`then hands control to any hook that was installed before it.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createRunCmd(), createInstallCmd(), createUninstallCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

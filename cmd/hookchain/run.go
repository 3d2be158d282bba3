package main

import (
	"fmt"
	"os"

	"github.com/avelaur/hookchain/internal/base"
	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/dispatcher"
	"github.com/avelaur/hookchain/pkg/engine"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/legacy"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/avelaur/hookchain/pkg/resolver"
	"github.com/spf13/cobra"
)

func createRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- <hook args>...]",
		Short: "Run the hook chain (invoked by git through the hook shim)",
		Long: `Run the full hook chain for one commit attempt: the checking engine ` +
			`against every applicable configuration source, then the pre-existing hook. ` +
			`Arguments after -- are forwarded unchanged to every invocation. ` +
			`The exit code is 0 only if every check and the pre-existing hook passed.`,
		Args: cobra.ArbitraryArgs,
		Run: func(_ *cobra.Command, args []string) {
			cfg := loadConfig()

			code, err := buildDispatcher(cfg).Run(args)
			if err != nil {
				fmt.Fprintf(os.Stderr, "hookchain: %v\n", err)
			}
			os.Exit(code)
		},
	}
}

// buildDispatcher assembles the chain runner with real collaborators.
func buildDispatcher(cfg *config.Config) dispatcher.Dispatcher {
	filesystem := fs.NewFS()
	gitClient := git.NewGit()

	// Hook runs are traced to a rotating audit log so the hook's own output
	// streams stay reserved for the engine and the pre-existing hook.
	auditLogger, err := logger.NewFileLogger(cfg.Log.Path, logger.RotationConfig{
		MaxAge:     cfg.Log.MaxAgeDays,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		// Audit logging must never block a commit
		auditLogger = logger.NewNoopLogger()
	}

	var diagLogger logger.Logger = logger.NewStderrLogger()
	if quiet {
		diagLogger = logger.NewNoopLogger()
	}

	return dispatcher.NewDispatcher(dispatcher.NewDispatcherParams{
		Base: base.NewBase(base.NewBaseParams{
			FS:      filesystem,
			Git:     gitClient,
			Config:  cfg,
			Logger:  diagLogger,
			Verbose: verbose,
		}),
		Resolver: resolver.NewResolver(resolver.NewResolverParams{
			FS:     filesystem,
			Config: cfg,
		}),
		Engine: engine.NewEngine(engine.NewEngineParams{
			FS:     filesystem,
			Config: cfg,
			Logger: auditLogger,
		}),
		Legacy: legacy.NewHook(legacy.NewHookParams{
			FS:     filesystem,
			Git:    gitClient,
			Config: cfg,
			Logger: auditLogger,
		}),
	})
}

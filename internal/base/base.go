// Package base provides common functionality for hookchain components.
package base

import (
	"fmt"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/logger"
)

// Base provides common functionality for hookchain components.
type Base struct {
	FS      fs.FS
	Git     git.Git
	Config  *config.Config
	Logger  logger.Logger
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Git     git.Git
	Config  *config.Config
	Logger  logger.Logger
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	return &Base{
		FS:      params.FS,
		Git:     params.Git,
		Config:  params.Config,
		Logger:  params.Logger,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}

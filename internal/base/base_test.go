//go:build unit

package base

import (
	"testing"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/logger"
	"go.uber.org/mock/gomock"
)

func TestBase_VerbosePrint_Enabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	base := NewBase(NewBaseParams{
		FS:      mockFS,
		Git:     mockGit,
		Config:  &config.Config{},
		Logger:  mockLogger,
		Verbose: true,
	})

	// Expect verbose print to be called
	mockLogger.EXPECT().Logf("Test message with arg").Times(1)

	base.VerbosePrint("Test message with %s", "arg")
}

func TestBase_VerbosePrint_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	base := NewBase(NewBaseParams{
		FS:      mockFS,
		Git:     mockGit,
		Config:  &config.Config{},
		Logger:  mockLogger,
		Verbose: false,
	})

	// No expectations set on mockLogger
	base.VerbosePrint("Test message with %s", "arg")
}

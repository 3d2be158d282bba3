//go:build unit

package engine

import (
	"testing"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/avelaur/hookchain/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEngine_Invoke_EngineNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fs.NewMockFS(ctrl)

	e := NewEngine(NewEngineParams{
		FS: mockFS,
		Config: &config.Config{
			Engine:   "pre-commit",
			HookType: "pre-commit",
		},
		Logger: logger.NewNoopLogger(),
	})

	mockFS.EXPECT().Which("pre-commit").Return("", assert.AnError)

	source := resolver.ConfigSource{Path: "/tmp/cfg.yaml", Scope: resolver.ScopeGlobal}
	_, err := e.Invoke(source, nil)
	assert.ErrorIs(t, err, ErrEngineNotFound)
}

func TestOutcome_Succeeded(t *testing.T) {
	assert.True(t, Outcome{ExitCode: 0}.Succeeded())
	assert.False(t, Outcome{ExitCode: 1}.Succeeded())
	assert.False(t, Outcome{ExitCode: 65}.Succeeded())
}

//go:build integration

package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/avelaur/hookchain/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStubEngine installs a shell script named "stub-engine" on PATH that
// records its arguments and exits with the given code.
func writeStubEngine(t *testing.T, exitCode string) string {
	t.Helper()
	binDir := t.TempDir()
	argsFile := filepath.Join(binDir, "args.txt")

	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\nexit " + exitCode + "\n"
	err := os.WriteFile(filepath.Join(binDir, "stub-engine"), []byte(script), 0755)
	require.NoError(t, err)

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

func newStubConfig() *config.Config {
	return &config.Config{
		Engine:   "stub-engine",
		HookType: "pre-commit",
		HooksDir: "/home/user/.hookchain/hooks",
	}
}

func TestEngine_Invoke_Success(t *testing.T) {
	argsFile := writeStubEngine(t, "0")

	e := NewEngine(NewEngineParams{
		FS:     fs.NewFS(),
		Config: newStubConfig(),
		Logger: logger.NewNoopLogger(),
	})

	source := resolver.ConfigSource{Path: "/tmp/cfg.yaml", Scope: resolver.ScopeGlobal}
	outcome, err := e.Invoke(source, []string{"file-a.go", "file-b.go"})
	assert.NoError(t, err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, source, outcome.Source)

	// The engine saw the fixed flags, the separator, and the forwarded args
	recorded, err := os.ReadFile(argsFile)
	assert.NoError(t, err)
	assert.Equal(t,
		"--hook-type=pre-commit\n--hook-dir=/home/user/.hookchain/hooks\n--config=/tmp/cfg.yaml\n--\nfile-a.go\nfile-b.go\n",
		string(recorded))
}

func TestEngine_Invoke_CheckFailure(t *testing.T) {
	writeStubEngine(t, "65")

	e := NewEngine(NewEngineParams{
		FS:     fs.NewFS(),
		Config: newStubConfig(),
		Logger: logger.NewNoopLogger(),
	})

	source := resolver.ConfigSource{Path: "/tmp/cfg.yaml", Scope: resolver.ScopeProject}
	outcome, err := e.Invoke(source, nil)

	// A failing check is an outcome, not an error
	assert.NoError(t, err)
	assert.Equal(t, 65, outcome.ExitCode)
	assert.False(t, outcome.Succeeded())
}

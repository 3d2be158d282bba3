//go:build integration

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLogger_Logf(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "hookchain.log")

	logger, err := NewFileLogger(logPath, DefaultRotationConfig())
	assert.NoError(t, err)

	logger.Logf("run finished with exit code %d", 1)

	content, err := os.ReadFile(logPath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "run finished with exit code 1")
}

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// Should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

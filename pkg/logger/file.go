package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig holds configuration for audit log rotation.
type RotationConfig struct {
	MaxAge     int  // Maximum number of days to retain log files
	MaxSize    int  // Maximum size in megabytes before rotation
	MaxBackups int  // Maximum number of backup files to retain
	Compress   bool // Whether to compress rotated files
}

// DefaultRotationConfig returns sensible defaults for audit log rotation.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxAge:     30,
		MaxSize:    10,
		MaxBackups: 5,
		Compress:   true,
	}
}

// fileLogger writes timestamped entries to a rotating log file. Hook runs are
// logged here rather than to the hook's own output streams, which belong to
// the checking engine.
type fileLogger struct {
	mu  sync.Mutex
	out *lumberjack.Logger
}

// NewFileLogger creates a logger appending to logPath with rotation.
func NewFileLogger(logPath string, rotation RotationConfig) (Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &fileLogger{
		out: &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    rotation.MaxSize,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAge,
			Compress:   rotation.Compress,
			LocalTime:  true,
		},
	}, nil
}

// Logf writes a timestamped formatted message to the log file.
func (f *fileLogger) Logf(format string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(f.out, time.Now().Format(time.RFC3339)+" "+format+"\n", args...)
}

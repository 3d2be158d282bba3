// Package config provides the dispatcher's own settings, loaded from a YAML
// file. It is distinct from the configuration sources resolved for the
// checking engine, which stay opaque to this program.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=config.go -destination=mockconfig.gen.go -package=config

// LogConfig holds the audit log settings.
type LogConfig struct {
	Path       string `yaml:"path"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// Config represents the dispatcher configuration.
type Config struct {
	// Engine is the checking engine executable looked up on PATH.
	Engine string `yaml:"engine"`

	// HookType is the hook slot this dispatcher serves.
	HookType string `yaml:"hook_type"`

	// HooksDir is the directory git is pointed at via core.hooksPath.
	HooksDir string `yaml:"hooks_dir"`

	// GlobalSource is the path of the per-user configuration source.
	GlobalSource string `yaml:"global_source"`

	// ProjectSource is the configuration source file name looked up
	// relative to the directory the hook runs from.
	ProjectSource string `yaml:"project_source"`

	Log LogConfig `yaml:"log"`
}

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path. Keys absent
// from the file keep their default values.
func (c *realManager) LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML over the defaults
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	expandHome(config)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}

	return &Config{
		Engine:        "pre-commit",
		HookType:      "pre-commit",
		HooksDir:      filepath.Join(homeDir, ".hookchain", "hooks"),
		GlobalSource:  filepath.Join(homeDir, ".config", "hookchain", "pre-commit-config.yaml"),
		ProjectSource: ".pre-commit-config.yaml",
		Log: LogConfig{
			Path:       filepath.Join(homeDir, ".hookchain", "logs", "hookchain.log"),
			MaxAgeDays: 30,
			MaxSizeMB:  10,
			MaxBackups: 5,
			Compress:   true,
		},
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Engine == "" {
		return ErrEngineEmpty
	}
	if c.HookType == "" {
		return ErrHookTypeEmpty
	}
	if c.ProjectSource == "" {
		return ErrProjectSourceEmpty
	}
	if filepath.IsAbs(c.ProjectSource) {
		return fmt.Errorf("%w: %s", ErrProjectSourceAbsolute, c.ProjectSource)
	}

	return nil
}

// LoadConfigWithFallback loads configuration from file with fallback to
// default. A hook run must never be blocked by a missing dispatcher config.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	// Try to load from file first
	if config, err := manager.LoadConfig(configPath); err == nil {
		return config, nil
	}

	// Fallback to default configuration
	return manager.DefaultConfig(), nil
}

// expandHome replaces a leading "~/" in path fields with the home directory.
func expandHome(c *Config) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return
	}

	for _, p := range []*string{&c.HooksDir, &c.GlobalSource, &c.Log.Path} {
		if strings.HasPrefix(*p, "~/") {
			*p = filepath.Join(homeDir, strings.TrimPrefix(*p, "~/"))
		}
	}
}

package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrEngineEmpty           = errors.New("engine cannot be empty")
	ErrHookTypeEmpty         = errors.New("hook_type cannot be empty")
	ErrProjectSourceEmpty    = errors.New("project_source cannot be empty")
	ErrProjectSourceAbsolute = errors.New("project_source must be relative to the repository")
)

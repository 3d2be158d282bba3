package engine

import "errors"

// Error definitions for engine package.
var (
	// ErrEngineNotFound is fatal for the whole chain: a dispatcher that
	// silently skips all checks when its engine is missing would be a
	// silent-failure hazard.
	ErrEngineNotFound = errors.New("checking engine not found on PATH")

	// ErrEngineStart reports an engine that could not be launched at all.
	ErrEngineStart = errors.New("failed to start checking engine")
)

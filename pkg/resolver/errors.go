package resolver

import "errors"

// Error definitions for resolver package.
var (
	// ErrWorkingDirUnavailable is fatal: no invocation is possible without a
	// working directory.
	ErrWorkingDirUnavailable = errors.New("working directory unavailable")

	// ErrSourceCheck reports a filesystem failure while probing a source path.
	ErrSourceCheck = errors.New("failed to check configuration source")
)

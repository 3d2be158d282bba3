package legacy

import "errors"

// Error definitions for legacy package.
var (
	// ErrHookCheck reports a filesystem failure while probing the hook.
	ErrHookCheck = errors.New("failed to check pre-existing hook")

	// ErrHookMissing reports a Run call with no hook to delegate to.
	ErrHookMissing = errors.New("no pre-existing hook to run")

	// ErrHookStart reports a hook that could not be launched at all.
	ErrHookStart = errors.New("failed to start pre-existing hook")
)

package installer

import "errors"

// Error definitions for installer package.
var (
	ErrShimWrite         = errors.New("failed to write hook shim")
	ErrHooksPathSet      = errors.New("failed to set core.hooksPath")
	ErrHooksPathUnset    = errors.New("failed to unset core.hooksPath")
	ErrGlobalSourceSeed  = errors.New("failed to seed global configuration source")
	ErrEngineUnreachable = errors.New("checking engine not reachable on PATH")
)

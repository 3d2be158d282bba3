// Package dispatcher runs the full hook chain for one version-control
// invocation: every resolved configuration source through the checking
// engine, then the pre-existing hook, then a single aggregate exit code.
package dispatcher

import (
	"github.com/avelaur/hookchain/internal/base"
	"github.com/avelaur/hookchain/pkg/engine"
	"github.com/avelaur/hookchain/pkg/legacy"
	"github.com/avelaur/hookchain/pkg/resolver"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=dispatcher.go -destination=mockdispatcher.gen.go -package=dispatcher

// runState tracks where a run is. States advance strictly forward; aborted is
// terminal and reachable from resolving and invoking only.
type runState string

const (
	stateNotStarted runState = "not-started"
	stateResolving  runState = "resolving"
	stateInvoking   runState = "invoking"
	stateDelegating runState = "delegating"
	stateDone       runState = "done"
	stateAborted    runState = "aborted"
)

// Dispatcher interface provides the hook chain execution.
type Dispatcher interface {
	// Run executes the chain with the arguments git passed to the hook slot
	// and returns the process exit code. A non-nil error reports a fatal
	// condition (unavailable working directory, missing engine) and always
	// pairs with a nonzero code; ordinary check failures surface only
	// through the code.
	Run(hookArgs []string) (int, error)
}

type realDispatcher struct {
	*base.Base
	resolver resolver.Resolver
	engine   engine.Engine
	legacy   legacy.Hook
	state    runState
}

// NewDispatcherParams contains parameters for creating a new Dispatcher instance.
type NewDispatcherParams struct {
	Base     *base.Base
	Resolver resolver.Resolver
	Engine   engine.Engine
	Legacy   legacy.Hook
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(params NewDispatcherParams) Dispatcher {
	return &realDispatcher{
		Base:     params.Base,
		resolver: params.Resolver,
		engine:   params.Engine,
		legacy:   params.Legacy,
		state:    stateNotStarted,
	}
}

func (d *realDispatcher) transition(s runState) {
	d.state = s
	d.VerbosePrint("dispatcher state: %s", s)
}

// Run executes the chain and returns the aggregate exit code.
func (d *realDispatcher) Run(hookArgs []string) (int, error) {
	d.transition(stateResolving)
	sources, err := d.resolver.Resolve()
	if err != nil {
		d.transition(stateAborted)
		return 1, err
	}
	// The resolved set is fixed for the rest of the run; no re-discovery

	var outcomes []engine.Outcome
	for _, source := range sources {
		d.transition(stateInvoking)
		d.VerbosePrint("invoking engine for %s source %s", source.Scope, source.Path)

		outcome, err := d.engine.Invoke(source, hookArgs)
		if err != nil {
			// A missing engine is a systemic misconfiguration, not a
			// per-source failure: nothing else may run
			d.transition(stateAborted)
			return 1, err
		}

		// A nonzero outcome is recorded but never short-circuits: every
		// configured source gets a chance to report in one pass
		outcomes = append(outcomes, outcome)
	}

	d.transition(stateDelegating)
	present, err := d.legacy.Present()
	if err != nil {
		d.transition(stateAborted)
		return 1, err
	}
	if present {
		d.VerbosePrint("delegating to pre-existing hook")
		code, err := d.legacy.Run(hookArgs)
		if err != nil {
			d.transition(stateAborted)
			return 1, err
		}
		outcomes = append(outcomes, engine.Outcome{ExitCode: code})
	}

	d.transition(stateDone)

	// First nonzero code in execution order wins
	for _, outcome := range outcomes {
		if !outcome.Succeeded() {
			return outcome.ExitCode, nil
		}
	}
	return 0, nil
}

// Package resolver discovers the configuration sources that apply to a hook
// run: the per-user GLOBAL source, then the PROJECT source of the repository
// the hook fired in.
package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolver.go -destination=mockresolver.gen.go -package=resolver

// Scope identifies which layer a configuration source belongs to.
type Scope string

// Configuration source scopes, in execution order.
const (
	ScopeGlobal  Scope = "global"
	ScopeProject Scope = "project"
)

// ConfigSource identifies one configuration source for the checking engine.
// Sources are discovered fresh on every run and immutable once resolved; their
// content is opaque to the dispatcher.
type ConfigSource struct {
	Path  string
	Scope Scope
}

// Resolver interface provides configuration source discovery.
type Resolver interface {
	// Resolve returns the applicable sources in execution order: GLOBAL
	// first, then PROJECT. Missing sources are skipped; an empty result is a
	// legal no-op run.
	Resolve() ([]ConfigSource, error)
}

type realResolver struct {
	fs     fs.FS
	config *config.Config
}

// NewResolverParams contains parameters for creating a new Resolver instance.
type NewResolverParams struct {
	FS     fs.FS
	Config *config.Config
}

// NewResolver creates a new Resolver instance.
func NewResolver(params NewResolverParams) Resolver {
	return &realResolver{
		fs:     params.FS,
		config: params.Config,
	}
}

// Resolve returns the applicable sources in execution order.
func (r *realResolver) Resolve() ([]ConfigSource, error) {
	var sources []ConfigSource

	// GLOBAL: well-known path under the user's configuration root
	exists, err := r.fs.Exists(r.config.GlobalSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceCheck, err)
	}
	if exists {
		sources = append(sources, ConfigSource{
			Path:  r.config.GlobalSource,
			Scope: ScopeGlobal,
		})
	}

	// PROJECT: well-known file name relative to the directory the
	// version-control operation was triggered from
	workDir, err := r.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkingDirUnavailable, err)
	}

	projectPath := filepath.Join(workDir, r.config.ProjectSource)
	exists, err = r.fs.Exists(projectPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceCheck, err)
	}
	if exists {
		sources = append(sources, ConfigSource{
			Path:  projectPath,
			Scope: ScopeProject,
		})
	}

	return sources, nil
}

//go:build unit

package resolver

import (
	"path/filepath"
	"testing"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Engine:        "pre-commit",
		HookType:      "pre-commit",
		GlobalSource:  "/home/user/.config/hookchain/pre-commit-config.yaml",
		ProjectSource: ".pre-commit-config.yaml",
	}
}

func newTestResolver(t *testing.T) (Resolver, *fs.MockFS) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockFS := fs.NewMockFS(ctrl)
	r := NewResolver(NewResolverParams{
		FS:     mockFS,
		Config: testConfig(),
	})
	return r, mockFS
}

func TestResolver_Resolve_BothSources(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()
	projectPath := filepath.Join("/work/repo", cfg.ProjectSource)

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(true, nil)
	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockFS.EXPECT().Exists(projectPath).Return(true, nil)

	sources, err := r.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, []ConfigSource{
		{Path: cfg.GlobalSource, Scope: ScopeGlobal},
		{Path: projectPath, Scope: ScopeProject},
	}, sources)
}

func TestResolver_Resolve_GlobalOnly(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(true, nil)
	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockFS.EXPECT().Exists(filepath.Join("/work/repo", cfg.ProjectSource)).Return(false, nil)

	sources, err := r.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, []ConfigSource{
		{Path: cfg.GlobalSource, Scope: ScopeGlobal},
	}, sources)
}

func TestResolver_Resolve_ProjectOnly(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()
	projectPath := filepath.Join("/work/repo", cfg.ProjectSource)

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(false, nil)
	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockFS.EXPECT().Exists(projectPath).Return(true, nil)

	sources, err := r.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, []ConfigSource{
		{Path: projectPath, Scope: ScopeProject},
	}, sources)
}

func TestResolver_Resolve_NoSources(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(false, nil)
	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockFS.EXPECT().Exists(filepath.Join("/work/repo", cfg.ProjectSource)).Return(false, nil)

	sources, err := r.Resolve()
	assert.NoError(t, err)
	assert.Empty(t, sources)
}

func TestResolver_Resolve_WorkingDirUnavailable(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(false, nil)
	mockFS.EXPECT().Getwd().Return("", assert.AnError)

	_, err := r.Resolve()
	assert.ErrorIs(t, err, ErrWorkingDirUnavailable)
}

func TestResolver_Resolve_SourceCheckFailure(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(false, assert.AnError)

	_, err := r.Resolve()
	assert.ErrorIs(t, err, ErrSourceCheck)
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	r, mockFS := newTestResolver(t)
	cfg := testConfig()
	projectPath := filepath.Join("/work/repo", cfg.ProjectSource)

	mockFS.EXPECT().Exists(cfg.GlobalSource).Return(true, nil).Times(2)
	mockFS.EXPECT().Getwd().Return("/work/repo", nil).Times(2)
	mockFS.EXPECT().Exists(projectPath).Return(true, nil).Times(2)

	first, err := r.Resolve()
	assert.NoError(t, err)
	second, err := r.Resolve()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

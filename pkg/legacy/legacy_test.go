//go:build unit

package legacy

import (
	"path/filepath"
	"testing"

	"github.com/avelaur/hookchain/pkg/config"
	"github.com/avelaur/hookchain/pkg/fs"
	"github.com/avelaur/hookchain/pkg/git"
	"github.com/avelaur/hookchain/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestHook(t *testing.T) (Hook, *fs.MockFS, *git.MockGit) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	h := NewHook(NewHookParams{
		FS:     mockFS,
		Git:    mockGit,
		Config: &config.Config{HookType: "pre-commit"},
		Logger: logger.NewNoopLogger(),
	})
	return h, mockFS, mockGit
}

func TestHook_Present_Runnable(t *testing.T) {
	h, mockFS, mockGit := newTestHook(t)
	hookPath := filepath.Join("/work/repo/.git", "hooks", "pre-commit")

	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockGit.EXPECT().GitDir("/work/repo").Return("/work/repo/.git", nil)
	mockFS.EXPECT().Exists(hookPath).Return(true, nil)
	mockFS.EXPECT().IsExecutable(hookPath).Return(true, nil)

	present, err := h.Present()
	assert.NoError(t, err)
	assert.True(t, present)
}

func TestHook_Present_Missing(t *testing.T) {
	h, mockFS, mockGit := newTestHook(t)
	hookPath := filepath.Join("/work/repo/.git", "hooks", "pre-commit")

	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockGit.EXPECT().GitDir("/work/repo").Return("/work/repo/.git", nil)
	mockFS.EXPECT().Exists(hookPath).Return(false, nil)

	present, err := h.Present()
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestHook_Present_NotExecutable(t *testing.T) {
	h, mockFS, mockGit := newTestHook(t)
	hookPath := filepath.Join("/work/repo/.git", "hooks", "pre-commit")

	mockFS.EXPECT().Getwd().Return("/work/repo", nil)
	mockGit.EXPECT().GitDir("/work/repo").Return("/work/repo/.git", nil)
	mockFS.EXPECT().Exists(hookPath).Return(true, nil)
	mockFS.EXPECT().IsExecutable(hookPath).Return(false, nil)

	present, err := h.Present()
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestHook_Present_OutsideRepository(t *testing.T) {
	h, mockFS, mockGit := newTestHook(t)

	mockFS.EXPECT().Getwd().Return("/somewhere", nil)
	mockGit.EXPECT().GitDir("/somewhere").Return("", assert.AnError)

	present, err := h.Present()
	assert.NoError(t, err)
	assert.False(t, present)
}

func TestHook_Present_WorkingDirUnavailable(t *testing.T) {
	h, mockFS, _ := newTestHook(t)

	mockFS.EXPECT().Getwd().Return("", assert.AnError)

	_, err := h.Present()
	assert.ErrorIs(t, err, ErrHookCheck)
}

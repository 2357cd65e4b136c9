package syncstate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/cdbg-sync/src/cdbg/entity"
	"github.com/uber/cdbg-sync/src/cdbg/factory"
	cdbgerrors "github.com/uber/cdbg-sync/src/cdbg/internal/errors"
	"github.com/uber/cdbg-sync/src/cdbg/internal/fs"
	"github.com/uber/cdbg-sync/src/cdbg/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRepository(t *testing.T, dir string) Repository {
	cfg, err := config.NewYAML(config.Source(strings.NewReader("syncState:\n  directory: " + dir + "\n")))
	require.NoError(t, err)
	r, err := New(Params{Config: cfg, FS: fs.New(), Logger: zap.NewNop().Sugar()})
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("default directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockFileSystem(ctrl)
		fsMock.EXPECT().UserConfigDir().Return("/home/user/.config", nil)

		cfg, err := config.NewYAML(config.Source(strings.NewReader("logging:\n  level: info\n")))
		require.NoError(t, err)
		r, err := New(Params{Config: cfg, FS: fsMock, Logger: zap.NewNop().Sugar()})
		require.NoError(t, err)
		assert.Equal(t, "/home/user/.config/cdbg-sync/state", r.(*repository).dir)
	})

	t.Run("user config dir failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockFileSystem(ctrl)
		fsMock.EXPECT().UserConfigDir().Return("", errors.New("$HOME is not defined"))

		cfg, err := config.NewYAML(config.Source(strings.NewReader("logging:\n  level: info\n")))
		require.NoError(t, err)
		_, err = New(Params{Config: cfg, FS: fsMock, Logger: zap.NewNop().Sugar()})
		assert.Error(t, err)
	})
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	r := newTestRepository(t, dir)

	state := factory.SyncState("/ws/app", "default")
	token := "token-A"
	state.SetWaitToken(&token)
	state.SetListenInBackground(true)
	state.ReplaceSnapshot([]*entity.Breakpoint{
		factory.ActiveBreakpoint("com/google/Foo.java", 124),
		factory.FinalBreakpoint("com/google/Bar.java", 7, "2016-09-21T16:39:00Z"),
	})

	require.NoError(t, r.Save(state))

	loaded, err := r.Load("/ws/app", "default")
	require.NoError(t, err)
	assert.Equal(t, state.DebuggeeID, loaded.DebuggeeID)
	assert.Equal(t, state.ProjectID, loaded.ProjectID)
	assert.Equal(t, "/ws/app", loaded.WorkspaceRoot)
	assert.Equal(t, "default", loaded.RunConfiguration)
	require.NotNil(t, loaded.WaitToken())
	assert.Equal(t, "token-A", *loaded.WaitToken())
	assert.True(t, loaded.ListenInBackground())
	require.Len(t, loaded.CurrentSnapshot(), 2)
	assert.Equal(t, state.CurrentSnapshot()[0].ID, loaded.CurrentSnapshot()[0].ID)
	assert.Equal(t, &entity.SourceLocation{Path: "com/google/Foo.java", Line: 124}, loaded.CurrentSnapshot()[0].Location)
	assert.True(t, loaded.CurrentSnapshot()[1].IsFinalState)

	t.Run("save replaces the entry", func(t *testing.T) {
		state.SetListenInBackground(false)
		state.SetWaitToken(nil)
		require.NoError(t, r.Save(state))

		loaded, err := r.Load("/ws/app", "default")
		require.NoError(t, err)
		assert.False(t, loaded.ListenInBackground())
		assert.Nil(t, loaded.WaitToken())
	})

	t.Run("unknown run configuration", func(t *testing.T) {
		_, err := r.Load("/ws/app", "other")
		var nf *cdbgerrors.RunConfigurationNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "other", nf.RunConfiguration)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		_, err := r.Load("/ws/missing", "default")
		var nf *cdbgerrors.RunConfigurationNotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("nil state", func(t *testing.T) {
		assert.Error(t, r.Save(nil))
	})
}

func TestLoadAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	r := newTestRepository(t, dir)

	states, err := r.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, states, "missing directory yields no states")

	require.NoError(t, r.Save(factory.SyncState("/ws/a", "staging")))
	require.NoError(t, r.Save(factory.SyncState("/ws/a", "prod")))
	require.NoError(t, r.Save(factory.SyncState("/ws/b", "default")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.yaml"), []byte("states: [not, a, map"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))

	states, err = r.LoadAll()
	require.NoError(t, err)
	keys := make([]string, 0, len(states))
	for _, s := range states {
		keys = append(keys, s.Key())
	}
	assert.ElementsMatch(t, []string{
		entity.SyncStateKey("/ws/a", "prod"),
		entity.SyncStateKey("/ws/a", "staging"),
		entity.SyncStateKey("/ws/b", "default"),
	}, keys)
}

func TestDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	r := newTestRepository(t, dir)

	require.NoError(t, r.Delete("/ws/a", "default"), "deleting from an empty store is not an error")

	require.NoError(t, r.Save(factory.SyncState("/ws/a", "default")))
	require.NoError(t, r.Save(factory.SyncState("/ws/a", "other")))

	require.NoError(t, r.Delete("/ws/a", "default"))
	_, err := r.Load("/ws/a", "default")
	assert.Error(t, err)
	_, err = r.Load("/ws/a", "other")
	assert.NoError(t, err)

	require.NoError(t, r.Delete("/ws/a", "other"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "the workspace file is removed with its last entry")
}

func TestFileSystemErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsMock := fsmock.NewMockFileSystem(ctrl)
	r := &repository{dir: "/state", fs: fsMock, logger: zap.NewNop().Sugar()}

	t.Run("write failure", func(t *testing.T) {
		fsMock.EXPECT().FileExists(gomock.Any()).Return(false, nil)
		fsMock.EXPECT().MkdirAll("/state").Return(nil)
		fsMock.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		assert.ErrorContains(t, r.Save(factory.SyncState("/ws", "default")), "disk full")
	})

	t.Run("read failure", func(t *testing.T) {
		fsMock.EXPECT().FileExists(gomock.Any()).Return(true, nil)
		fsMock.EXPECT().ReadFile(gomock.Any()).Return(nil, errors.New("permission denied"))
		_, err := r.Load("/ws", "default")
		assert.ErrorContains(t, err, "permission denied")
	})

	t.Run("hash collision with another workspace", func(t *testing.T) {
		fsMock.EXPECT().FileExists(gomock.Any()).Return(true, nil)
		fsMock.EXPECT().ReadFile(gomock.Any()).Return([]byte("workspaceRoot: /elsewhere\nstates: {}\n"), nil)
		_, err := r.Load("/ws", "default")
		assert.ErrorContains(t, err, "/elsewhere")
	})
}

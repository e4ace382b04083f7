package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/testutil"
	"github.com/knakagawa/taskpad/internal/usecase"
)

func TestNew(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, domain.DataDir(dataHome), c.Paths.DataDir)
	assert.Equal(t, domain.StorePath(c.Paths.DataDir), c.Paths.StorePath)
	assert.NotNil(t, c.List)
	assert.Equal(t, 0, c.List.Len())
}

func TestNew_LoadsExistingStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	storePath := domain.StorePath(domain.DataDir(dataHome))
	require.NoError(t, os.MkdirAll(filepath.Dir(storePath), 0o750))
	require.NoError(t, os.WriteFile(storePath, []byte(`[{"id": "a", "text": "persisted"}]`), 0o600))

	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, 1, c.List.Len())
	assert.Equal(t, "persisted", c.List.Get("a").Text)
}

func TestNew_StorePathFromConfig(t *testing.T) {
	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	custom := filepath.Join(t.TempDir(), "elsewhere.json")
	confDir := domain.ConfigDir(confHome)
	require.NoError(t, os.MkdirAll(confDir, 0o750))
	content := "[store]\npath = \"" + custom + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(confDir, domain.ConfigFileName), []byte(content), 0o600))

	c, err := New()
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, custom, c.Paths.StorePath)
}

func TestNewWithDeps_UseCasesShareList(t *testing.T) {
	list := domain.NewTaskList(nil)
	store := &testutil.MockStore{}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	c := NewWithDeps(list, store, &testutil.MockClock{NowTime: now}, &testutil.SeqIDs{})

	_, err := c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: "shared"})
	require.NoError(t, err)

	out, err := c.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "shared", out.Tasks[0].Text)

	require.NoError(t, c.Close())
}

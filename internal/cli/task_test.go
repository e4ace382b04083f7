package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/taskpad/internal/app"
	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/testutil"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// execute runs the root command with the given args against a container
// seeded with the given task texts, and returns stdout and the error.
func execute(t *testing.T, store *testutil.MockStore, texts []string, args ...string) (string, error) {
	t.Helper()
	list := domain.NewTaskList(nil)
	ids := &testutil.SeqIDs{}
	for _, text := range texts {
		require.NotNil(t, list.Add(ids.NewID(), text, fixedNow))
	}
	container := app.NewWithDeps(list, store, &testutil.MockClock{NowTime: fixedNow}, ids)

	root := NewRootCommand(container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAddCommand(t *testing.T) {
	store := &testutil.MockStore{}

	out, err := execute(t, store, nil, "add", "Buy", "milk")
	require.NoError(t, err)

	assert.Equal(t, "Added: Buy milk\n", out)
	require.Len(t, store.Saved, 1)
	require.Len(t, store.LastSaved(), 1)
	assert.Equal(t, "Buy milk", store.LastSaved()[0].Text)
}

func TestAddCommand_EmptyText(t *testing.T) {
	store := &testutil.MockStore{}

	_, err := execute(t, store, nil, "add", "   ")
	require.ErrorIs(t, err, domain.ErrEmptyText)
	assert.Empty(t, store.Saved)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, &testutil.MockStore{}, []string{"older", "newer"}, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "  1  [ ] newer")
	assert.Contains(t, out, "  2  [ ] older")
	assert.Contains(t, out, "2 items left")
}

func TestListCommand_Empty(t *testing.T) {
	out, err := execute(t, &testutil.MockStore{}, nil, "list")
	require.NoError(t, err)

	assert.Equal(t, "No tasks.\n", out)
}

func TestListCommand_Alias(t *testing.T) {
	out, err := execute(t, &testutil.MockStore{}, []string{"only"}, "ls")
	require.NoError(t, err)

	assert.Contains(t, out, "only")
	assert.Contains(t, out, "1 item left")
}

func TestDoneCommand(t *testing.T) {
	store := &testutil.MockStore{}

	out, err := execute(t, store, []string{"A"}, "done", "1")
	require.NoError(t, err)

	assert.Equal(t, "Marked done: A\n", out)
	require.Len(t, store.Saved, 1)
	assert.True(t, store.LastSaved()[0].Completed)
}

func TestDoneCommand_PositionOutOfRange(t *testing.T) {
	_, err := execute(t, &testutil.MockStore{}, []string{"A"}, "done", "5")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDoneCommand_BadPosition(t *testing.T) {
	_, err := execute(t, &testutil.MockStore{}, []string{"A"}, "done", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
}

func TestRemoveCommand(t *testing.T) {
	store := &testutil.MockStore{}

	out, err := execute(t, store, []string{"older", "newer"}, "rm", "1")
	require.NoError(t, err)

	assert.Equal(t, "Deleted: newer\n", out)
	require.Len(t, store.Saved, 1)
	require.Len(t, store.LastSaved(), 1)
	assert.Equal(t, "older", store.LastSaved()[0].Text)
}

func TestClearCommand(t *testing.T) {
	store := &testutil.MockStore{}
	list := domain.NewTaskList(nil)
	ids := &testutil.SeqIDs{}
	list.Add(ids.NewID(), "A", fixedNow)
	list.Add(ids.NewID(), "B", fixedNow)
	list.Toggle("id-1")
	container := app.NewWithDeps(list, store, &testutil.MockClock{NowTime: fixedNow}, ids)

	root := NewRootCommand(container, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"clear"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "Removed 1 completed task(s)\n", out.String())
	assert.Equal(t, 1, list.Len())
}

func TestImportCommand(t *testing.T) {
	store := &testutil.MockStore{}
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `
- text: Buy milk
- text: ""
- text: Ship release
  completed: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := execute(t, store, nil, "import", path)
	require.NoError(t, err)

	assert.Equal(t, "Imported 2 task(s), skipped 1\n", out)
	require.Len(t, store.Saved, 1)
	assert.Len(t, store.LastSaved(), 2)
}

func TestImportCommand_MissingFile(t *testing.T) {
	_, err := execute(t, &testutil.MockStore{}, nil, "import", "/nonexistent/tasks.yaml")
	require.Error(t, err)
}

func TestRootCommand_LaunchesTUI(t *testing.T) {
	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	_, err := execute(t, &testutil.MockStore{}, nil)
	require.NoError(t, err)
	assert.True(t, launched)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/testutil"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestAddTask_Execute(t *testing.T) {
	list := domain.NewTaskList(nil)
	store := &testutil.MockStore{}
	uc := NewAddTask(list, store, &testutil.SeqIDs{}, &testutil.MockClock{NowTime: fixedNow}, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{Text: "  Buy milk  "})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Equal(t, "id-1", out.TaskID)

	task := list.Get("id-1")
	require.NotNil(t, task)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, fixedNow, task.CreatedAt)

	require.Len(t, store.Saved, 1)
	assert.Equal(t, list.Tasks(), store.LastSaved())
}

func TestAddTask_Execute_PrependsNewest(t *testing.T) {
	list := domain.NewTaskList(nil)
	uc := NewAddTask(list, &testutil.MockStore{}, &testutil.SeqIDs{}, &testutil.MockClock{NowTime: fixedNow}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Text: "A"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), AddTaskInput{Text: "B"})
	require.NoError(t, err)

	tasks := list.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[0].Text)
	assert.Equal(t, "A", tasks[1].Text)
}

func TestAddTask_Execute_EmptyTextNoop(t *testing.T) {
	list := domain.NewTaskList(nil)
	store := &testutil.MockStore{}
	uc := NewAddTask(list, store, &testutil.SeqIDs{}, &testutil.MockClock{NowTime: fixedNow}, nil)

	for _, text := range []string{"", "   ", "\t\n"} {
		out, err := uc.Execute(context.Background(), AddTaskInput{Text: text})
		require.NoError(t, err)
		assert.False(t, out.Created, "text %q", text)
		assert.Empty(t, out.TaskID, "text %q", text)
	}

	assert.Equal(t, 0, list.Len())
	assert.Empty(t, store.Saved, "no-op must not persist")
}

func TestAddTask_Execute_SaveFailureStillSucceeds(t *testing.T) {
	list := domain.NewTaskList(nil)
	store := &testutil.MockStore{SaveErr: errors.New("disk full")}
	uc := NewAddTask(list, store, &testutil.SeqIDs{}, &testutil.MockClock{NowTime: fixedNow}, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{Text: "survives"})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Equal(t, 1, list.Len())
}

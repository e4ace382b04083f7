package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/testutil"
)

func seedList(texts ...string) *domain.TaskList {
	list := domain.NewTaskList(nil)
	ids := &testutil.SeqIDs{}
	for _, text := range texts {
		list.Add(ids.NewID(), text, fixedNow)
	}
	return list
}

func TestToggleTask_Execute(t *testing.T) {
	list := seedList("A", "B")
	store := &testutil.MockStore{}
	uc := NewToggleTask(list, store, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: "id-1"})
	require.NoError(t, err)

	assert.True(t, out.Toggled)
	assert.True(t, out.Completed)
	assert.Equal(t, 1, out.Remaining)
	assert.True(t, list.Get("id-1").Completed)
	require.Len(t, store.Saved, 1)

	// Toggle back.
	out, err = uc.Execute(context.Background(), ToggleTaskInput{TaskID: "id-1"})
	require.NoError(t, err)

	assert.True(t, out.Toggled)
	assert.False(t, out.Completed)
	assert.Equal(t, 2, out.Remaining)
	require.Len(t, store.Saved, 2)
}

func TestToggleTask_Execute_UnknownIDNoop(t *testing.T) {
	list := seedList("A")
	store := &testutil.MockStore{}
	uc := NewToggleTask(list, store, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: "missing"})
	require.NoError(t, err)

	assert.False(t, out.Toggled)
	assert.Equal(t, 1, out.Remaining)
	assert.Empty(t, store.Saved, "no-op must not persist")
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/taskpad/internal/testutil"
)

func TestDeleteTask_Execute(t *testing.T) {
	list := seedList("A", "B")
	store := &testutil.MockStore{}
	uc := NewDeleteTask(list, store, nil)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "id-1"})
	require.NoError(t, err)

	assert.True(t, out.Deleted)
	assert.Nil(t, list.Get("id-1"))
	assert.Equal(t, 1, list.Len())
	require.Len(t, store.Saved, 1)
	assert.Len(t, store.LastSaved(), 1)
}

func TestDeleteTask_Execute_UnknownIDNoop(t *testing.T) {
	list := seedList("A")
	store := &testutil.MockStore{}
	uc := NewDeleteTask(list, store, nil)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "missing"})
	require.NoError(t, err)

	assert.False(t, out.Deleted)
	assert.Equal(t, 1, list.Len())
	assert.Empty(t, store.Saved, "no-op must not persist")
}

func TestDeleteTask_Execute_ClearsEditSession(t *testing.T) {
	list := seedList("A")
	list.StartEditing("id-1")
	uc := NewDeleteTask(list, &testutil.MockStore{}, nil)

	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "id-1"})
	require.NoError(t, err)

	_, editing := list.Editing()
	assert.False(t, editing)
}

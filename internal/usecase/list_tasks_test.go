package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	list := seedList("A", "B", "C")
	list.Toggle("id-2")
	uc := NewListTasks(list)

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)

	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "C", out.Tasks[0].Text)
	assert.Equal(t, "B", out.Tasks[1].Text)
	assert.Equal(t, "A", out.Tasks[2].Text)
	assert.Equal(t, 2, out.Remaining)
	assert.Nil(t, out.Editing)
}

func TestListTasks_Execute_WithEditSession(t *testing.T) {
	list := seedList("A")
	list.StartEditing("id-1")
	uc := NewListTasks(list)

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)

	require.NotNil(t, out.Editing)
	assert.Equal(t, "id-1", out.Editing.TaskID)
	assert.Equal(t, "A", out.Editing.Text)
}

func TestListTasks_Execute_Empty(t *testing.T) {
	uc := NewListTasks(seedList())

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)

	assert.Empty(t, out.Tasks)
	assert.Equal(t, 0, out.Remaining)
}

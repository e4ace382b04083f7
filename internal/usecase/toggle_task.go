package usecase

import (
	"context"

	"github.com/knakagawa/taskpad/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID string // Task to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Remaining int  // Incomplete task count after the toggle
	Completed bool // New completion state of the task
	Toggled   bool // False when the ID was absent (no-op)
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute flips the completion flag of the given task. An unknown ID is
// a no-op, not an error.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, ok := uc.list.Toggle(in.TaskID)
	if !ok {
		return &ToggleTaskOutput{Remaining: uc.list.Remaining()}, nil
	}

	persist(uc.list, uc.store, uc.logger)

	return &ToggleTaskOutput{
		Completed: task.Completed,
		Toggled:   true,
		Remaining: uc.list.Remaining(),
	}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/knakagawa/taskpad/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string // Task to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Deleted bool // False when the ID was absent (no-op)
}

// DeleteTask is the use case for deleting a task. Deleting the task
// referenced by the active edit session clears the session.
type DeleteTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute removes the given task from the collection. An unknown ID is
// a no-op, not an error.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if !uc.list.Delete(in.TaskID) {
		return &DeleteTaskOutput{}, nil
	}

	persist(uc.list, uc.store, uc.logger)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted %s", in.TaskID))
	}

	return &DeleteTaskOutput{Deleted: true}, nil
}

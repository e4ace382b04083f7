package usecase

import (
	"context"
	"fmt"

	"github.com/knakagawa/taskpad/internal/domain"
)

// ClearCompletedInput contains the parameters for clearing completed tasks.
type ClearCompletedInput struct{}

// ClearCompletedOutput contains the result of clearing completed tasks.
type ClearCompletedOutput struct {
	Removed int // Number of tasks removed
}

// ClearCompleted is the use case for removing all completed tasks.
type ClearCompleted struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute removes every completed task. With nothing completed the
// collection is unchanged and nothing is persisted.
func (uc *ClearCompleted) Execute(_ context.Context, _ ClearCompletedInput) (*ClearCompletedOutput, error) {
	removed := uc.list.ClearCompleted()
	if removed == 0 {
		return &ClearCompletedOutput{}, nil
	}

	persist(uc.list, uc.store, uc.logger)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("cleared %d completed", removed))
	}

	return &ClearCompletedOutput{Removed: removed}, nil
}

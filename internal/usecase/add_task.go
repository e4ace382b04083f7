package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/knakagawa/taskpad/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Text string // Task text; leading/trailing whitespace is trimmed
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	TaskID  string // ID of the created task (empty if nothing was created)
	Created bool   // False when the trimmed text was empty
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(list *domain.TaskList, store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		list:   list,
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute prepends a new task to the collection. Empty trimmed text is
// a no-op, not an error.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return &AddTaskOutput{}, nil
	}

	task := uc.list.Add(uc.ids.NewID(), in.Text, uc.clock.Now())
	if task == nil {
		return &AddTaskOutput{}, nil
	}

	persist(uc.list, uc.store, uc.logger)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created %s: %q", task.ID, task.Text))
	}

	return &AddTaskOutput{TaskID: task.ID, Created: true}, nil
}

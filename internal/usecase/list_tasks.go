package usecase

import (
	"context"

	"github.com/knakagawa/taskpad/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the task collection and derived view data.
type ListTasksOutput struct {
	Editing   *domain.EditSession // Active edit session (nil if none)
	Tasks     []*domain.Task      // Snapshot in display order, newest first
	Remaining int                 // Count of incomplete tasks
}

// ListTasks is the use case for reading the collection.
type ListTasks struct {
	list *domain.TaskList
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(list *domain.TaskList) *ListTasks {
	return &ListTasks{list: list}
}

// Execute returns a snapshot of the collection, the remaining count,
// and the active edit session.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	out := &ListTasksOutput{
		Tasks:     uc.list.Tasks(),
		Remaining: uc.list.Remaining(),
	}
	if session, ok := uc.list.Editing(); ok {
		out.Editing = &session
	}
	return out, nil
}

package usecase

import (
	"context"

	"github.com/knakagawa/taskpad/internal/domain"
)

// StartEditingInput contains the parameters for opening an edit session.
type StartEditingInput struct {
	TaskID string // Task to edit
}

// StartEditingOutput contains the result of opening an edit session.
type StartEditingOutput struct {
	Text    string // Current task text, seeded as in-progress edit text
	Started bool   // False when the ID was absent (no-op)
}

// StartEditing is the use case for entering edit mode on a task.
// Starting a new edit while another is active abandons the previous
// session's unsaved text; at most one session exists at a time.
type StartEditing struct {
	list *domain.TaskList
}

// NewStartEditing creates a new StartEditing use case.
func NewStartEditing(list *domain.TaskList) *StartEditing {
	return &StartEditing{list: list}
}

// Execute opens an edit session for the given task. The collection is
// not mutated, so nothing is persisted.
func (uc *StartEditing) Execute(_ context.Context, in StartEditingInput) (*StartEditingOutput, error) {
	session, ok := uc.list.StartEditing(in.TaskID)
	if !ok {
		return &StartEditingOutput{}, nil
	}
	return &StartEditingOutput{Text: session.Text, Started: true}, nil
}

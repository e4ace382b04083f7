package usecase

import (
	"context"

	"github.com/knakagawa/taskpad/internal/domain"
)

// CancelEditingInput contains the parameters for cancelling an edit.
type CancelEditingInput struct{}

// CancelEditingOutput contains the result of cancelling an edit.
type CancelEditingOutput struct{}

// CancelEditing is the use case for discarding the active edit session.
type CancelEditing struct {
	list *domain.TaskList
}

// NewCancelEditing creates a new CancelEditing use case.
func NewCancelEditing(list *domain.TaskList) *CancelEditing {
	return &CancelEditing{list: list}
}

// Execute clears the edit session and discards in-progress text. The
// collection is not mutated; cancelling with no active session is a
// no-op.
func (uc *CancelEditing) Execute(_ context.Context, _ CancelEditingInput) (*CancelEditingOutput, error) {
	uc.list.CancelEditing()
	return &CancelEditingOutput{}, nil
}

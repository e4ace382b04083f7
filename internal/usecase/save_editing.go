package usecase

import (
	"context"
	"fmt"

	"github.com/knakagawa/taskpad/internal/domain"
)

// SaveEditingInput contains the parameters for committing an edit.
type SaveEditingInput struct {
	Text string // Final edit text; leading/trailing whitespace is trimmed
}

// SaveEditingOutput contains the result of committing an edit.
type SaveEditingOutput struct {
	TaskID  string // Task the edit applied to (empty if no session was active)
	Saved   bool   // True when the task text was replaced
	Deleted bool   // True when empty edit text removed the task
}

// SaveEditing is the use case for committing the active edit session.
// Saving with empty trimmed text deletes the task instead of leaving an
// empty task in the collection.
type SaveEditing struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewSaveEditing creates a new SaveEditing use case.
func NewSaveEditing(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *SaveEditing {
	return &SaveEditing{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute commits the edit session with the given text. Saving with no
// active session is a no-op, not an error. The session is cleared in
// every branch.
func (uc *SaveEditing) Execute(_ context.Context, in SaveEditingInput) (*SaveEditingOutput, error) {
	id, outcome := uc.list.SaveEditing(in.Text)

	switch outcome {
	case domain.EditNotSaved:
		return &SaveEditingOutput{}, nil

	case domain.EditDeleted:
		persist(uc.list, uc.store, uc.logger)
		if uc.logger != nil {
			uc.logger.Info("task", fmt.Sprintf("deleted %s (empty edit)", id))
		}
		return &SaveEditingOutput{TaskID: id, Deleted: true}, nil

	default:
		persist(uc.list, uc.store, uc.logger)
		return &SaveEditingOutput{TaskID: id, Saved: true}, nil
	}
}

package tui

import "github.com/knakagawa/taskpad/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the collection snapshot is refreshed.
type MsgTasksLoaded struct {
	Editing   *domain.EditSession
	Tasks     []*domain.Task
	Remaining int
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a new task is created.
type MsgTaskAdded struct {
	TaskID  string
	Created bool
}

func (MsgTaskAdded) sealed() {}

// MsgTaskToggled is sent when a task's completion flag is flipped.
type MsgTaskToggled struct {
	TaskID    string
	Remaining int
	Completed bool
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgEditStarted is sent when an edit session is opened.
type MsgEditStarted struct {
	TaskID  string
	Text    string
	Started bool
}

func (MsgEditStarted) sealed() {}

// MsgEditSaved is sent when an edit session is committed.
type MsgEditSaved struct {
	TaskID  string
	Deleted bool // True when empty edit text removed the task
}

func (MsgEditSaved) sealed() {}

// MsgEditCancelled is sent when an edit session is discarded.
type MsgEditCancelled struct{}

func (MsgEditCancelled) sealed() {}

// MsgCompletedCleared is sent when completed tasks are removed.
type MsgCompletedCleared struct {
	Removed int
}

func (MsgCompletedCleared) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

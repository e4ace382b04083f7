package domain

import (
	"strings"
	"time"
)

// EditSession tracks the single task (if any) being inline-edited
// and its in-progress text.
type EditSession struct {
	TaskID string
	Text   string
}

// SaveEditOutcome describes the result of TaskList.SaveEditing.
type SaveEditOutcome int

const (
	EditNotSaved SaveEditOutcome = iota // No active edit session
	EditSaved                           // Task text replaced
	EditDeleted                         // Edit text was empty; task removed
)

// String returns the string representation of the outcome.
func (o SaveEditOutcome) String() string {
	switch o {
	case EditNotSaved:
		return "not_saved"
	case EditSaved:
		return "saved"
	case EditDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// TaskList owns the in-memory task collection and the edit session.
// All mutations go through its command methods, which maintain:
//   - no task with empty trimmed text
//   - no duplicate IDs
//   - newest task first
//   - at most one edit session, always referencing a present task
//
// Invalid input (empty text, unknown ID) is a no-op signalled by the
// return value, never an error.
type TaskList struct {
	editing *EditSession
	tasks   []*Task
}

// NewTaskList creates a TaskList from an initial collection, typically
// the result of TaskStore.Load. Entries with empty trimmed text or a
// duplicate ID are dropped.
func NewTaskList(tasks []*Task) *TaskList {
	l := &TaskList{tasks: make([]*Task, 0, len(tasks))}
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t == nil || seen[t.ID] || strings.TrimSpace(t.Text) == "" {
			continue
		}
		seen[t.ID] = true
		l.tasks = append(l.tasks, t)
	}
	return l
}

// Tasks returns a snapshot of the collection in display order.
func (l *TaskList) Tasks() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Remaining returns the number of incomplete tasks.
func (l *TaskList) Remaining() int {
	n := 0
	for _, t := range l.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Get returns the task with the given ID, or nil if absent.
func (l *TaskList) Get(id string) *Task {
	for _, t := range l.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Add creates a task from the trimmed text and prepends it to the
// collection. Returns nil without mutating when the trimmed text is
// empty or the ID is already present.
func (l *TaskList) Add(id, text string, now time.Time) *Task {
	if l.Get(id) != nil {
		return nil
	}
	task := NewTask(id, text, now)
	if task == nil {
		return nil
	}
	l.tasks = append([]*Task{task}, l.tasks...)
	return task
}

// Toggle flips the completion flag of the task with the given ID.
// Returns the task and true, or nil and false if the ID is absent.
func (l *TaskList) Toggle(id string) (*Task, bool) {
	task := l.Get(id)
	if task == nil {
		return nil, false
	}
	task.Completed = !task.Completed
	return task, true
}

// Delete removes the task with the given ID. If the edit session
// references that task it is cleared as well. Returns false if the ID
// is absent.
func (l *TaskList) Delete(id string) bool {
	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			if l.editing != nil && l.editing.TaskID == id {
				l.editing = nil
			}
			return true
		}
	}
	return false
}

// StartEditing opens an edit session for the task with the given ID,
// seeded with its current text. Any previously active session is
// abandoned. Returns false if the ID is absent.
func (l *TaskList) StartEditing(id string) (EditSession, bool) {
	task := l.Get(id)
	if task == nil {
		return EditSession{}, false
	}
	l.editing = &EditSession{TaskID: id, Text: task.Text}
	return *l.editing, true
}

// Editing returns the active edit session, if any.
func (l *TaskList) Editing() (EditSession, bool) {
	if l.editing == nil {
		return EditSession{}, false
	}
	return *l.editing, true
}

// CancelEditing clears the edit session, discarding in-progress text.
// The collection is not mutated.
func (l *TaskList) CancelEditing() {
	l.editing = nil
}

// SaveEditing commits the active edit session with the given text.
// Empty trimmed text deletes the task instead of leaving it empty.
// The session is cleared in both branches.
func (l *TaskList) SaveEditing(text string) (string, SaveEditOutcome) {
	if l.editing == nil {
		return "", EditNotSaved
	}
	id := l.editing.TaskID
	l.editing = nil

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		l.Delete(id)
		return id, EditDeleted
	}

	task := l.Get(id)
	if task == nil {
		// Session referenced a task deleted by another path.
		return "", EditNotSaved
	}
	task.Text = trimmed
	return id, EditSaved
}

// ClearCompleted removes every completed task and returns how many
// were removed. A matching edit session is cleared.
func (l *TaskList) ClearCompleted() int {
	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if t.Completed {
			removed++
			if l.editing != nil && l.editing.TaskID == t.ID {
				l.editing = nil
			}
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	return removed
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knakagawa/taskpad/internal/app"
	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/knakagawa/taskpad/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	addInput  textinput.Model
	editInput textinput.Model

	// Numeric state (smaller types last)
	editTaskID    string
	confirmTaskID string
	mode          Mode
	cursor        int
	remaining     int
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "What needs to be done?"
	ai.CharLimit = 500

	ei := textinput.New()
	ei.CharLimit = 500

	return &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		addInput:  ai,
		editInput: ei,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// SelectedTask returns the task under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// loadTasks returns a command that snapshots the collection.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Remaining: out.Remaining, Editing: out.Editing}
	}
}

// addTask returns a command that creates a new task.
func (m *Model) addTask(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(
			context.Background(),
			usecase.AddTaskInput{Text: text},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{TaskID: out.TaskID, Created: out.Created}
	}
}

// toggleTask returns a command that flips a task's completion flag.
func (m *Model) toggleTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(
			context.Background(),
			usecase.ToggleTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{TaskID: taskID, Completed: out.Completed, Remaining: out.Remaining}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(
			context.Background(),
			usecase.DeleteTaskInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// startEditing returns a command that opens an edit session.
func (m *Model) startEditing(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.StartEditingUseCase().Execute(
			context.Background(),
			usecase.StartEditingInput{TaskID: taskID},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgEditStarted{TaskID: taskID, Text: out.Text, Started: out.Started}
	}
}

// saveEditing returns a command that commits the edit session.
func (m *Model) saveEditing(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SaveEditingUseCase().Execute(
			context.Background(),
			usecase.SaveEditingInput{Text: text},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgEditSaved{TaskID: out.TaskID, Deleted: out.Deleted}
	}
}

// cancelEditing returns a command that discards the edit session.
func (m *Model) cancelEditing() tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.CancelEditingUseCase().Execute(
			context.Background(),
			usecase.CancelEditingInput{},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgEditCancelled{}
	}
}

// clearCompleted returns a command that removes completed tasks.
func (m *Model) clearCompleted() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearCompletedUseCase().Execute(
			context.Background(),
			usecase.ClearCompletedInput{},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCompletedCleared{Removed: out.Removed}
	}
}

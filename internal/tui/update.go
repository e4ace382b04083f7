package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.remaining = msg.Remaining
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.mode = ModeNormal
		m.addInput.Reset()
		m.addInput.Blur()
		if msg.Created {
			// New task is prepended; keep it under the cursor.
			m.cursor = 0
		}
		return m, m.loadTasks()

	case MsgTaskToggled:
		m.remaining = msg.Remaining
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, m.loadTasks()

	case MsgEditStarted:
		if !msg.Started {
			return m, m.loadTasks()
		}
		m.mode = ModeEdit
		m.editTaskID = msg.TaskID
		m.editInput.SetValue(msg.Text)
		m.editInput.CursorEnd()
		return m, m.editInput.Focus()

	case MsgEditSaved:
		m.mode = ModeNormal
		m.editTaskID = ""
		m.editInput.Reset()
		m.editInput.Blur()
		return m, m.loadTasks()

	case MsgEditCancelled:
		m.mode = ModeNormal
		m.editTaskID = ""
		m.editInput.Reset()
		m.editInput.Blur()
		return m, m.loadTasks()

	case MsgCompletedCleared:
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses according to the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeNormal:
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeInput
		m.err = nil
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if task := m.SelectedTask(); task != nil {
			return m, m.startEditing(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.mode = ModeConfirm
			m.confirmTaskID = task.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		return m, m.clearCompleted()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.addTask(m.addInput.Value())

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.addInput.Reset()
		m.addInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.saveEditing(m.editInput.Value())

	case key.Matches(msg, m.keys.Escape):
		return m, m.cancelEditing()
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		taskID := m.confirmTaskID
		return m, m.deleteTask(taskID)

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	// Any other key cancels the confirmation.
	m.mode = ModeNormal
	m.confirmTaskID = ""
	return m, nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	m.mode = ModeNormal
	return m, nil
}

// clampCursor keeps the cursor inside the task list after reloads.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

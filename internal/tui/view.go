package tui

import (
	"fmt"
	"strings"

	"github.com/knakagawa/taskpad/internal/domain"
	"github.com/mattn/go-runewidth"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeEdit, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list with any active overlay.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("New task: "))
		b.WriteString(m.addInput.View())
		b.WriteString("\n")
	case ModeEdit:
		// The edited task's row is replaced inline; nothing extra here.
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title and the remaining count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	label := "items left"
	if m.remaining == 1 {
		label = "item left"
	}
	count := m.styles.Remaining.Render(fmt.Sprintf("%d %s", m.remaining, label))

	return m.styles.Header.Render(title + "  " + count)
}

// viewTaskList renders the collection, newest first.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.styles.EmptyMsg.Render("No tasks. Press n to add one.") + "\n"
	}

	var b strings.Builder
	for i, task := range m.tasks {
		if m.mode == ModeEdit && task.ID == m.editTaskID {
			b.WriteString("  " + m.styles.InputPrompt.Render("> ") + m.editInput.View())
		} else {
			b.WriteString(m.renderTaskLine(task, i == m.cursor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTaskLine renders one task row.
func (m *Model) renderTaskLine(task *domain.Task, selected bool) string {
	indicator := " "
	if selected {
		indicator = ">"
	}

	checkbox := m.styles.Checkbox.Render("[ ]")
	if task.Completed {
		checkbox = m.styles.CheckboxDone.Render("[x]")
	}

	text := task.Text
	maxTextLen := m.width - 12
	if maxTextLen < 10 {
		maxTextLen = 10
	}
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen-3, "...")
	}

	var textPart string
	switch {
	case task.Completed:
		textPart = m.styles.TaskDone.Render(text)
	case selected:
		textPart = m.styles.TaskTextSelected.Render(text)
	default:
		textPart = m.styles.TaskText.Render(text)
	}

	return "  " + m.styles.SelectionIndicator.Render(indicator) + " " + checkbox + " " + textPart
}

// viewConfirmDialog renders the delete confirmation.
func (m *Model) viewConfirmDialog() string {
	task := (*domain.Task)(nil)
	for _, t := range m.tasks {
		if t.ID == m.confirmTaskID {
			task = t
			break
		}
	}

	text := "this task"
	if task != nil {
		text = fmt.Sprintf("%q", task.Text)
	}

	body := m.styles.ConfirmText.Render("Delete "+text+"?") +
		"\n" + m.styles.Remaining.Render("y: delete  any other key: cancel")
	return m.styles.ConfirmDialog.Render(body)
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Remaining.Render("press any key to return"))
	return b.String()
}

// viewFooter renders the short key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeInput, ModeEdit:
		return m.styles.Footer.Render("enter: save  esc: cancel")
	case ModeConfirm, ModeHelp, ModeNormal:
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

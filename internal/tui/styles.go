package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DoneText      lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DoneText:      lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Remaining  lipgloss.Style

	// Task list
	SelectionIndicator lipgloss.Style
	TaskText           lipgloss.Style
	TaskTextSelected   lipgloss.Style
	TaskDone           lipgloss.Style
	Checkbox           lipgloss.Style
	CheckboxDone       lipgloss.Style
	CreatedAt          lipgloss.Style

	// Dialogs and inputs
	InputPrompt   lipgloss.Style
	ConfirmDialog lipgloss.Style
	ConfirmText   lipgloss.Style

	// Messages
	ErrorMsg lipgloss.Style
	EmptyMsg lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header:     lipgloss.NewStyle().MarginBottom(1),
		HeaderText: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Remaining:  lipgloss.NewStyle().Foreground(Colors.Muted),

		SelectionIndicator: lipgloss.NewStyle().Foreground(Colors.Primary),
		TaskText:           lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TaskTextSelected:   lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		TaskDone:           lipgloss.NewStyle().Foreground(Colors.DoneText).Strikethrough(true),
		Checkbox:           lipgloss.NewStyle().Foreground(Colors.Secondary),
		CheckboxDone:       lipgloss.NewStyle().Foreground(Colors.Success),
		CreatedAt:          lipgloss.NewStyle().Foreground(Colors.Muted),

		InputPrompt: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		ConfirmDialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Padding(0, 1),
		ConfirmText: lipgloss.NewStyle().Foreground(Colors.Error),

		ErrorMsg: lipgloss.NewStyle().Foreground(Colors.Error),
		EmptyMsg: lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),

		Footer: lipgloss.NewStyle().Foreground(Colors.Muted).MarginTop(1),
	}
}

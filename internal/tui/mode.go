// Package tui provides the terminal user interface for taskpad.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeInput               // New task text input mode
	ModeEdit                // Inline task edit mode
	ModeConfirm             // Delete confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeEdit:
		return "edit"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInput, ModeEdit:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

package tui

import "github.com/charmbracelet/lipgloss"

// Checkbox glyphs.
const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

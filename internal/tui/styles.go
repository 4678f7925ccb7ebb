package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	linkStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorRowStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pickedRowStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("22"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

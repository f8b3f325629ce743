package tui

import (
	"davenews/media"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF0000"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
)

// Styles for the TUI application
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorError)).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo)).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().Bold(true)
)

// cardStyle outlines a card in its media colours
func cardStyle(s media.Style, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Accent)).
		Padding(0, 1).
		Width(width)
}

// accentStyle colours the source label, icon and call to action
func accentStyle(s media.Style) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent))
}

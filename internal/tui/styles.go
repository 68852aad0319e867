package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the browse TUI.
//
//nolint:gochecknoglobals // Styles are immutable render configuration.
var (
	// HeaderStyle renders section headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	// LabelStyle renders field labels in the detail view.
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// ValueStyle renders field values in the detail view.
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// SubtleStyle renders help lines and secondary information.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// ErrorStyle renders fetch and load failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// BoxStyle frames the detail view.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// BorderChipStyle renders a border-country link.
	BorderChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// BorderChipSelectedStyle renders the focused border-country link.
	BorderChipSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	// TableHeaderStyle styles the country table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("240"))

	// TableSelectedStyle styles the selected country table row.
	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

package browse

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	label      lipgloss.Style
	inputBox   lipgloss.Style
	focusedBox lipgloss.Style
	header     lipgloss.Style
	row        lipgloss.Style
	indepTag   lipgloss.Style
	chainTag   lipgloss.Style
	footer     lipgloss.Style
	errLine    lipgloss.Style
	note       lipgloss.Style
	share      lipgloss.Style
	empty      lipgloss.Style
	help       lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		inputBox:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		focusedBox: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Underline(true),
		row:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		indepTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		chainTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
		footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		errLine:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		note:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		share:      lipgloss.NewStyle().Faint(true),
		empty:      lipgloss.NewStyle().Faint(true),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

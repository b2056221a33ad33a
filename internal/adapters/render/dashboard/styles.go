package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	metric   lipgloss.Style
	value    lipgloss.Style
	section  lipgloss.Style
	stateBar lipgloss.Style
	runOK    lipgloss.Style
	runFail  lipgloss.Style
	runMeta  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		metric:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section:  lipgloss.NewStyle().MarginTop(1).Bold(true).Foreground(lipgloss.Color("250")),
		stateBar: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		runOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
		runFail:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		runMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}

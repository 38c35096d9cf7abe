package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	banner    lipgloss.Style
	body      lipgloss.Style
	formError lipgloss.Style
	hint      lipgloss.Style
	notice    lipgloss.Style
	modal     lipgloss.Style
}

func newStyles() styles {
	return styles{
		tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245")),
		activeTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
		banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		body:      lipgloss.NewStyle().MarginTop(1),
		formError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hint:      lipgloss.NewStyle().Faint(true).MarginTop(1),
		notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1),
	}
}

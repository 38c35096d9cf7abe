package listing

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	greeting  lipgloss.Style
	subject   lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	badgeIn   lipgloss.Style
	badgeOut  lipgloss.Style
	badgeNew  lipgloss.Style
	badgeDone lipgloss.Style
	statValue lipgloss.Style
	link      lipgloss.Style
	panel     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		greeting:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subject:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		badgeIn:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		badgeOut:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		badgeNew:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		badgeDone: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		statValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		link:      lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("69")),
		panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1),
	}
}

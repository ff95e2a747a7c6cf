package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	prompt   lipgloss.Style
	nemesis  lipgloss.Style
	user     lipgloss.Style
	detail   lipgloss.Style
	taunt    lipgloss.Style
	warning  lipgloss.Style
	notice   lipgloss.Style
	help     lipgloss.Style
	cursor   lipgloss.Style
	option   lipgloss.Style
	barFrame lipgloss.Style
	barLeft  lipgloss.Style
	barRight lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		nemesis:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		user:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		taunt:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("217")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		help:     lipgloss.NewStyle().Faint(true),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		option:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barFrame: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barRight: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

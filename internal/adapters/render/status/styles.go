package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	nemesis    lipgloss.Style
	user       lipgloss.Style
	detail     lipgloss.Style
	taunt      lipgloss.Style
	warning    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	scoreKey   lipgloss.Style
	scoreMeta  lipgloss.Style
	barBracket lipgloss.Style
	barNemesis lipgloss.Style
	barUser    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		nemesis:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		taunt:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("217")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		scoreKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		scoreMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barNemesis: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barUser:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nemesix/nemesis-cli/internal/domain"
)

const scoreBarWidth = 28

func (m Model) View() string {
	if m.quit {
		return ""
	}

	switch m.phase {
	case phaseGoal:
		return m.viewOnboardingStep(
			"What do you want to achieve?",
			m.goalInput.View(),
			"enter to continue",
		)
	case phaseInsecurity:
		return m.viewOnboardingStep(
			"What do you fear holds you back?",
			m.insecInput.View(),
			"enter to continue, esc to go back",
		)
	case phasePersona:
		return m.viewPersonaPicker()
	case phaseConfirmReset:
		return m.viewConfirmReset()
	default:
		return m.viewDashboard()
	}
}

func (m Model) viewOnboardingStep(question, input, help string) string {
	lines := []string{
		m.styles.title.Render("SUMMON YOUR NEMESIS"),
		"",
		m.styles.prompt.Render(question),
		input,
	}

	if m.err != nil {
		lines = append(lines, m.styles.warning.Render(m.err.Error()))
	}

	lines = append(lines, "", m.styles.help.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewPersonaPicker() string {
	lines := []string{
		m.styles.title.Render("SUMMON YOUR NEMESIS"),
		"",
		m.styles.prompt.Render("Who are they?"),
	}

	for i, persona := range m.personas {
		marker := "  "
		style := m.styles.option
		if i == m.cursor {
			marker = m.styles.cursor.Render("> ")
			style = m.styles.cursor
		}
		lines = append(lines, marker+style.Render(persona.Name))
	}

	if m.err != nil {
		lines = append(lines, m.styles.warning.Render(m.err.Error()))
	}

	lines = append(lines, "", m.styles.help.Render("up/down to choose, enter to summon, esc to go back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDashboard() string {
	name := domain.DisplayName(m.session.NemesisType)

	lines := []string{
		m.styles.nemesis.Render(fmt.Sprintf("%s vs You", name)),
		m.styles.detail.Render(fmt.Sprintf("goal: %s", m.session.Goal)),
		"",
		m.scoreLine(name, m.session.NemesisScore, m.styles.barLeft),
		m.scoreLine("You", m.session.UserScore, m.styles.barRight),
		m.leadLine(name),
	}

	if m.taunt != "" {
		lines = append(lines, "", m.styles.taunt.Render(fmt.Sprintf("%q", m.taunt)))
	}
	if m.notice != "" {
		lines = append(lines, "", m.styles.notice.Render(m.notice))
	}
	if m.err != nil {
		lines = append(lines, "", m.styles.warning.Render(m.err.Error()))
	}

	lines = append(lines, "", m.styles.help.Render("w log work  t taunt  s surrender  r reset  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirmReset() string {
	lines := []string{
		m.styles.warning.Render("Banish your nemesis and erase all progress?"),
		"",
		m.styles.help.Render("y to confirm, n to keep fighting"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) scoreLine(name string, score int, fill lipgloss.Style) string {
	scale := m.session.NemesisScore
	if m.session.UserScore > scale {
		scale = m.session.UserScore
	}

	label := m.styles.prompt.Render(fmt.Sprintf("%-18s", name))
	bar := m.scoreBar(score, scale, fill)
	value := m.styles.detail.Render(fmt.Sprintf("%4d", score))

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", value)
}

func (m Model) leadLine(name string) string {
	lead := m.session.Lead()
	switch {
	case lead > 0:
		return m.styles.warning.Render(fmt.Sprintf("%s leads by %d", name, lead))
	case lead < 0:
		return m.styles.user.Render(fmt.Sprintf("You lead by %d", -lead))
	default:
		return m.styles.help.Render("Dead even")
	}
}

func (m Model) scoreBar(score, scale int, fill lipgloss.Style) string {
	if scale < 1 {
		scale = 1
	}
	if score < 0 {
		score = 0
	}

	fraction := float64(score) / float64(scale)
	filled := int(math.Round(scoreBarWidth * fraction))
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.barFrame.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		m.styles.barEmpty.Render(strings.Repeat("-", scoreBarWidth-filled)),
		m.styles.barFrame.Render("]"),
	)
}

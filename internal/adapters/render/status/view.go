package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const scoreBarWidth = 24

type RenderOptions struct {
	// Taunt is printed beneath the scoreboard when non-empty.
	Taunt string
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("THE NEMESIS"),
		s.header.Render(fmt.Sprintf("identity: %s", identityLabel(string(status.Identity)))),
	}

	if !status.Session.Active {
		lines = append(lines, s.empty.Render("No rival summoned. Run `nemesis summon` to create one."))
		lines = append(lines, s.section.Render(configLine(status, s)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderScoreboard(status, s)))

	if taunt := strings.TrimSpace(opts.Taunt); taunt != "" {
		lines = append(lines, s.section.Render(s.taunt.Render(fmt.Sprintf("%q", taunt))))
	}

	lines = append(lines, s.section.Render(configLine(status, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderScoreboard(status application.Status, s styles) string {
	session := status.Session
	scale := session.NemesisScore
	if session.UserScore > scale {
		scale = session.UserScore
	}

	parts := []string{
		s.nemesis.Render(fmt.Sprintf("Your rival: %s", status.NemesisName)),
		s.detail.Render(fmt.Sprintf("goal: %s", session.Goal)),
		s.detail.Render(fmt.Sprintf("weakness: %s", session.Insecurity)),
		"",
		scoreLine(status.NemesisName, session.NemesisScore, scale, s.barNemesis, s),
		scoreLine("You", session.UserScore, scale, s.barUser, s),
		leadLine(status, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func scoreLine(name string, score, scale int, fill lipgloss.Style, s styles) string {
	label := s.scoreKey.Render(fmt.Sprintf("%-18s", name))
	bar := renderScoreBar(score, scale, scoreBarWidth, fill, s)
	value := s.scoreMeta.Render(fmt.Sprintf("%4d", score))

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", value)
}

func leadLine(status application.Status, s styles) string {
	lead := status.Session.Lead()
	switch {
	case lead > 0:
		return s.warning.Render(fmt.Sprintf("%s leads by %d", status.NemesisName, lead))
	case lead < 0:
		return s.user.Render(fmt.Sprintf("You lead by %d", -lead))
	default:
		return s.scoreMeta.Render("Dead even")
	}
}

func renderScoreBar(score, scale, width int, fill lipgloss.Style, s styles) string {
	if width <= 0 {
		return ""
	}
	if scale < 1 {
		scale = 1
	}
	if score < 0 {
		score = 0
	}

	fraction := float64(score) / float64(scale)
	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	fillSegment := fill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", width-filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func configLine(status application.Status, s styles) string {
	mirror := "mirror: off"
	if status.MirrorConfigured {
		mirror = "mirror: on"
	}

	generator := "taunts: local pool"
	if status.GeneratorConfigured {
		generator = "taunts: generated"
	}

	return s.scoreMeta.Render(mirror + "  " + generator)
}

func identityLabel(id string) string {
	if strings.TrimSpace(id) == "" {
		return "none"
	}
	return id
}

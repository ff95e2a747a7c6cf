package dashboard

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemesix/nemesis-cli/internal/adapters/repo/toml"
	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/nemesix/nemesis-cli/internal/domain"
)

func newTestModel(t *testing.T, active bool) Model {
	t.Helper()

	cfg := viper.New()
	cfg.Set("state.path", filepath.Join(t.TempDir(), "state.toml"))
	repo, err := toml.NewRepository(cfg)
	require.NoError(t, err)

	svc := application.NewService(repo, repo, nil, nil, nil, nil, nil)
	if active {
		_, err := svc.Summon(context.Background(), "ship it", "doubt", domain.PersonaGrinder)
		require.NoError(t, err)
	}

	engine := application.NewEngine(svc, application.EngineConfig{})
	return New(context.Background(), svc, engine)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func TestOnboardingStartsAtGoal(t *testing.T) {
	m := newTestModel(t, false)

	assert.Equal(t, phaseGoal, m.phase)
	assert.Contains(t, m.View(), "What do you want to achieve?")
}

func TestOnboardingRejectsEmptyGoal(t *testing.T) {
	m := newTestModel(t, false)

	m = press(m, tea.KeyEnter)
	assert.Equal(t, phaseGoal, m.phase)
	assert.Contains(t, m.View(), domain.ErrGoalRequired.Error())
}

func TestOnboardingAdvancesThroughSteps(t *testing.T) {
	m := newTestModel(t, false)

	m = typeText(m, "ship it")
	m = press(m, tea.KeyEnter)
	assert.Equal(t, phaseInsecurity, m.phase)
	assert.Contains(t, m.View(), "What do you fear holds you back?")

	m = typeText(m, "doubt")
	m = press(m, tea.KeyEnter)
	assert.Equal(t, phasePersona, m.phase)

	view := m.View()
	assert.Contains(t, view, "The Perfectionist")
	assert.Contains(t, view, "The Natural")
	assert.Contains(t, view, "The Grinder")
}

func TestOnboardingEscStepsBack(t *testing.T) {
	m := newTestModel(t, false)

	m = typeText(m, "ship it")
	m = press(m, tea.KeyEnter)
	require.Equal(t, phaseInsecurity, m.phase)

	m = press(m, tea.KeyEsc)
	assert.Equal(t, phaseGoal, m.phase)
}

func TestPersonaCursorMoves(t *testing.T) {
	m := newTestModel(t, false)
	m = typeText(m, "ship it")
	m = press(m, tea.KeyEnter)
	m = typeText(m, "doubt")
	m = press(m, tea.KeyEnter)
	require.Equal(t, phasePersona, m.phase)

	next, _ := m.Update(keyRunes("j"))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyRunes("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(keyRunes("k"))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestSummonDoneEntersDashboard(t *testing.T) {
	m := newTestModel(t, false)

	session := domain.Session{
		Goal:         "ship it",
		Insecurity:   "doubt",
		NemesisType:  domain.PersonaGrinder,
		NemesisScore: domain.NemesisHeadStart,
		Active:       true,
	}
	next, _ := m.Update(summonDoneMsg{session: session})
	m = next.(Model)
	m.engine.Stop()

	assert.Equal(t, phaseDashboard, m.phase)
	view := m.View()
	assert.Contains(t, view, "The Grinder vs You")
	assert.Contains(t, view, "goal: ship it")
	assert.Contains(t, view, "w log work")
}

func TestActiveSessionSkipsOnboarding(t *testing.T) {
	m := newTestModel(t, true)

	assert.Equal(t, phaseDashboard, m.phase)
	assert.Contains(t, m.View(), "The Grinder vs You")
}

func TestWorkKeyLogsWork(t *testing.T) {
	m := newTestModel(t, true)

	next, _ := m.Update(keyRunes("w"))
	m = next.(Model)

	assert.Equal(t, domain.WorkPoints, m.session.UserScore)
	assert.Contains(t, m.View(), application.WorkAcknowledgement)
}

func TestSurrenderKeyChangesNothing(t *testing.T) {
	m := newTestModel(t, true)

	before := m.session
	next, _ := m.Update(keyRunes("s"))
	m = next.(Model)

	assert.Equal(t, before, m.session)
	assert.Contains(t, m.View(), application.SurrenderLine)
}

func TestEngineEventRefreshesScoreboard(t *testing.T) {
	m := newTestModel(t, true)

	session := m.session
	session.NemesisScore++
	next, _ := m.Update(engineEventMsg{event: application.Event{
		Kind:    application.EventTaunt,
		Session: session,
		Taunt:   "Still here?",
	}})
	m = next.(Model)

	assert.Equal(t, session.NemesisScore, m.session.NemesisScore)
	assert.Contains(t, m.View(), "Still here?")
}

func TestResetRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, true)

	next, _ := m.Update(keyRunes("r"))
	m = next.(Model)
	assert.Equal(t, phaseConfirmReset, m.phase)
	assert.Contains(t, m.View(), "Banish your nemesis")

	next, _ = m.Update(keyRunes("n"))
	m = next.(Model)
	assert.Equal(t, phaseDashboard, m.phase)
}

func TestResetConfirmReturnsToOnboarding(t *testing.T) {
	m := newTestModel(t, true)

	next, _ := m.Update(keyRunes("r"))
	m = next.(Model)
	next, _ = m.Update(keyRunes("y"))
	m = next.(Model)

	assert.Equal(t, phaseGoal, m.phase)
	assert.False(t, m.session.Active)
	assert.Empty(t, m.goalInput.Value())
}

func TestQuitKeyStopsProgram(t *testing.T) {
	m := newTestModel(t, true)

	next, cmd := m.Update(keyRunes("q"))
	m = next.(Model)

	assert.True(t, m.quit)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

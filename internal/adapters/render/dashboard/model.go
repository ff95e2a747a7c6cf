package dashboard

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nemesix/nemesis-cli/internal/application"
	"github.com/nemesix/nemesis-cli/internal/domain"
)

type phase int

const (
	phaseGoal phase = iota
	phaseInsecurity
	phasePersona
	phaseDashboard
	phaseConfirmReset
)

type engineEventMsg struct {
	event application.Event
}

type engineClosedMsg struct{}

type tauntReadyMsg struct {
	taunt string
}

type summonDoneMsg struct {
	session domain.Session
	err     error
}

// Model is the interactive session view. Onboarding collects goal,
// insecurity and persona; the dashboard then shows the live scoreboard
// driven by engine events.
type Model struct {
	ctx     context.Context
	service *application.Service
	engine  *application.Engine
	styles  styles

	phase      phase
	goalInput  textinput.Model
	insecInput textinput.Model
	personas   []domain.Persona
	cursor     int

	session domain.Session
	taunt   string
	notice  string
	err     error
	quit    bool
}

func New(ctx context.Context, service *application.Service, engine *application.Engine) Model {
	goal := textinput.New()
	goal.Placeholder = "e.g. finish the novel"
	goal.CharLimit = 120
	goal.Width = 48

	insec := textinput.New()
	insec.Placeholder = "e.g. I never follow through"
	insec.CharLimit = 120
	insec.Width = 48

	m := Model{
		ctx:        ctx,
		service:    service,
		engine:     engine,
		styles:     newStyles(),
		phase:      phaseGoal,
		goalInput:  goal,
		insecInput: insec,
		personas:   domain.Personas(),
		session:    service.Session(),
	}

	if m.session.Active {
		m.phase = phaseDashboard
	} else {
		m.goalInput.Focus()
	}

	return m
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseDashboard {
		return m.startEngine()
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.shutdown()
		}
		return m.handleKey(msg)

	case engineEventMsg:
		m.session = msg.event.Session
		if msg.event.Kind == application.EventTaunt {
			m.taunt = msg.event.Taunt
		}
		return m, waitForEvent(m.engine.Events())

	case engineClosedMsg:
		return m, nil

	case tauntReadyMsg:
		m.taunt = msg.taunt
		m.session = m.service.Session()
		return m, nil

	case summonDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseGoal
			m.goalInput.Focus()
			return m, textinput.Blink
		}
		m.session = msg.session
		m.phase = phaseDashboard
		m.notice = ""
		return m, tea.Batch(m.startEngine(), m.fetchTaunt())
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseGoal:
		if msg.String() == "enter" {
			if strings.TrimSpace(m.goalInput.Value()) == "" {
				m.err = domain.ErrGoalRequired
				return m, nil
			}
			m.err = nil
			m.phase = phaseInsecurity
			m.goalInput.Blur()
			m.insecInput.Focus()
			return m, textinput.Blink
		}

	case phaseInsecurity:
		switch msg.String() {
		case "enter":
			if strings.TrimSpace(m.insecInput.Value()) == "" {
				m.err = domain.ErrInsecurityRequired
				return m, nil
			}
			m.err = nil
			m.phase = phasePersona
			m.insecInput.Blur()
			return m, nil
		case "esc":
			m.phase = phaseGoal
			m.insecInput.Blur()
			m.goalInput.Focus()
			return m, textinput.Blink
		}

	case phasePersona:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.personas)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m, m.summon(m.personas[m.cursor].ID)
		case "esc":
			m.phase = phaseInsecurity
			m.insecInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case phaseDashboard:
		switch msg.String() {
		case "w":
			session, err := m.service.LogWork(m.ctx)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.session = session
			m.notice = application.WorkAcknowledgement
			return m, nil
		case "t":
			return m, m.fetchTaunt()
		case "s":
			m.notice = application.SurrenderLine
			return m, nil
		case "r":
			m.phase = phaseConfirmReset
			return m, nil
		case "q":
			return m.shutdown()
		}
		return m, nil

	case phaseConfirmReset:
		switch msg.String() {
		case "y":
			m.engine.Stop()
			if err := m.service.Reset(m.ctx); err != nil {
				m.err = err
				m.phase = phaseDashboard
				return m, nil
			}
			return m.restartOnboarding()
		case "n", "esc":
			m.phase = phaseDashboard
			return m, nil
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phaseGoal:
		m.goalInput, cmd = m.goalInput.Update(msg)
	case phaseInsecurity:
		m.insecInput, cmd = m.insecInput.Update(msg)
	}
	return m, cmd
}

func (m Model) restartOnboarding() (tea.Model, tea.Cmd) {
	m.phase = phaseGoal
	m.session = m.service.Session()
	m.taunt = ""
	m.notice = ""
	m.err = nil
	m.cursor = 0
	m.goalInput.SetValue("")
	m.insecInput.SetValue("")
	m.goalInput.Focus()
	return m, textinput.Blink
}

func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.engine.Stop()
	m.quit = true
	return m, tea.Quit
}

func (m Model) startEngine() tea.Cmd {
	m.engine.Start(m.ctx)
	return waitForEvent(m.engine.Events())
}

func (m Model) summon(personaID domain.PersonaID) tea.Cmd {
	goal := m.goalInput.Value()
	insecurity := m.insecInput.Value()
	return func() tea.Msg {
		session, err := m.service.Summon(m.ctx, goal, insecurity, personaID)
		return summonDoneMsg{session: session, err: err}
	}
}

func (m Model) fetchTaunt() tea.Cmd {
	return func() tea.Msg {
		return tauntReadyMsg{taunt: m.service.SelectTaunt(m.ctx, true)}
	}
}

// waitForEvent blocks on the engine channel as a command so ticks arrive
// as messages. It re-arms itself after every event.
func waitForEvent(events <-chan application.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg{event: event}
	}
}

// Run drives the dashboard until the user quits, then flushes pending
// mirror pushes.
func Run(ctx context.Context, service *application.Service, engine *application.Engine, output io.Writer) error {
	p := tea.NewProgram(
		New(ctx, service, engine),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	engine.Stop()
	service.Flush()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(Model); !ok {
		return fmt.Errorf("unexpected final dashboard model type %T", finalModel)
	}

	return nil
}

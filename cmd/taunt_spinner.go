package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tauntFetchDoneMsg struct {
	taunt string
}

type tauntFetchSpinnerModel struct {
	spinner spinner.Model
	label   string
	fetch   tea.Cmd
	taunt   string
	done    bool
}

func newTauntFetchSpinnerModel(label string, fetch tea.Cmd) tauntFetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
	)

	return tauntFetchSpinnerModel{
		spinner: s,
		label:   label,
		fetch:   fetch,
	}
}

func (m tauntFetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m tauntFetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tauntFetchDoneMsg:
		m.done = true
		m.taunt = msg.taunt
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m tauntFetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runTauntFetchSpinner shows a spinner while the taunt is selected; taunt
// selection itself never fails.
func runTauntFetchSpinner(ctx context.Context, output io.Writer, fetch func(context.Context) string) (string, error) {
	fetchCmd := func() tea.Msg {
		return tauntFetchDoneMsg{taunt: fetch(ctx)}
	}

	p := tea.NewProgram(
		newTauntFetchSpinnerModel("Your nemesis is thinking...", fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(tauntFetchSpinnerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.taunt, nil
}

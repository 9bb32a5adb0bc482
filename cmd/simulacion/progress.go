// cmd/simulacion/progress.go
package simulacion

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lillysepulveda9/simulacion-de-sistema/harness"
)

// runMsg is sent after every completed scheduling run.
type runMsg harness.RunResult

// suiteDoneMsg is sent when the whole suite has finished.
type suiteDoneMsg struct {
	res harness.SuiteResult
	err error
}

// experimentModel is the Bubble Tea model behind the experiment
// progress UI: a spinner, a progress bar over the run count and the
// last per-run summary line.
type experimentModel struct {
	spinner  spinner.Model
	progress progress.Model
	total    int
	done     int
	lastLine string
	aborted  bool
}

func newExperimentModel(total int) experimentModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return experimentModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		total:    total,
	}
}

func (m experimentModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m experimentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.aborted = true
			return m, tea.Quit
		}
	case runMsg:
		m.done++
		m.lastLine = runLine(harness.RunResult(msg))
		return m, nil
	case suiteDoneMsg:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m experimentModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	view := fmt.Sprintf("\n  %s Running simulations (%d/%d)\n\n  %s\n",
		m.spinner.View(), m.done, m.total, m.progress.ViewAs(frac))
	if m.lastLine != "" {
		view += "\n  " + faintStyle.Render(m.lastLine) + "\n"
	}
	return view
}

// runSuiteWithProgress executes the suite in the background while a
// Bubble Tea program renders per-run progress, and returns the suite
// result once the program exits. Quitting the UI cancels the suite
// before any further run starts; the returned error reports the abort.
func runSuiteWithProgress(cfg harness.SuiteConfig) (harness.SuiteResult, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newExperimentModel(cfg.Simulations))

	cfg.Progress = func(r harness.RunResult) {
		p.Send(runMsg(r))
	}
	done := make(chan suiteDoneMsg, 1)
	go func() {
		res, err := harness.RunSuite(ctx, cfg)
		done <- suiteDoneMsg{res: res, err: err}
		p.Send(suiteDoneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	cancel()
	suite := <-done
	if err != nil {
		return harness.SuiteResult{}, err
	}
	if final.(experimentModel).aborted {
		return suite.res, fmt.Errorf("experiment aborted")
	}
	return suite.res, suite.err
}

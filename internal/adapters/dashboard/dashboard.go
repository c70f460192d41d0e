package dashboard

import (
	"context"
	"time"

	"github.com/bnema/guard-limiter-cli/internal/application"
	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	refreshInterval = 500 * time.Millisecond
	commandTimeout  = 10 * time.Second
	logTailLines    = 8
)

type refreshMsg time.Time

type actionResultMsg struct {
	err error
}

// Model is the live session view. It only ever reads through the facade and
// mutates through the facade's command methods; the control loop stays the
// single owner of session state.
type Model struct {
	facade  *application.Facade
	spinner spinner.Model
	styles  styles
	width   int
	notice  string
}

func New(facade *application.Facade) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		facade:  facade,
		spinner: s,
		styles:  newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshTick())
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshMsg:
		return m, refreshTick()
	case actionResultMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
		} else {
			m.notice = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		return m, m.toggleSession()
	case "e":
		return m, m.manualExecute()
	case "m":
		return m, m.toggleMode()
	default:
		return m, nil
	}
}

func (m Model) toggleSession() tea.Cmd {
	monitoring := m.facade.Session().Monitoring

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if monitoring {
			return actionResultMsg{err: m.facade.Stop(ctx)}
		}
		return actionResultMsg{err: m.facade.Start(ctx)}
	}
}

func (m Model) manualExecute() tea.Cmd {
	return func() tea.Msg {
		return actionResultMsg{err: m.facade.ManualExecute()}
	}
}

func (m Model) toggleMode() tea.Cmd {
	next := domain.ModeAggressive
	if m.facade.Mode() == domain.ModeAggressive {
		next = domain.ModeStandard
	}

	return func() tea.Msg {
		return actionResultMsg{err: m.facade.SetMode(next)}
	}
}

// Run starts the dashboard program over the given facade and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, facade *application.Facade) error {
	p := tea.NewProgram(
		New(facade),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}

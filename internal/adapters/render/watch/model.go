package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/cc-quota/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type FetchFunc func(ctx context.Context) *domain.Snapshot

type RenderFunc func(snapshot *domain.Snapshot) (string, error)

type refreshedMsg struct {
	snapshot *domain.Snapshot
	at       time.Time
}

type tickMsg time.Time

type model struct {
	ctx      context.Context
	fetch    FetchFunc
	render   RenderFunc
	interval time.Duration
	now      func() time.Time

	spinner   spinner.Model
	footer    lipgloss.Style
	loading   bool
	line      string
	err       error
	updatedAt time.Time
}

func newModel(ctx context.Context, interval time.Duration, fetch FetchFunc, render RenderFunc) model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		ctx:      ctx,
		fetch:    fetch,
		render:   render,
		interval: interval,
		now:      time.Now,
		spinner:  s,
		footer:   lipgloss.NewStyle().Faint(true),
		loading:  true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

func (m model) refresh() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{snapshot: m.fetch(m.ctx), at: m.now()}
	}
}

func (m model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshedMsg:
		m.loading = false
		m.updatedAt = msg.at
		m.line, m.err = m.render(msg.snapshot)
		return m, m.scheduleTick()
	case tickMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.refresh())
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("render failed: %v\n", m.err)
	}
	if m.line == "" {
		return fmt.Sprintf("%s Fetching usage...\n", m.spinner.View())
	}

	status := "updated " + m.updatedAt.Format("15:04:05")
	if m.loading {
		status = m.spinner.View() + " refreshing"
	}

	return m.line + "\n" + m.footer.Render(status+" · q to quit") + "\n"
}

// Run refreshes and redraws the status line every interval until the user
// quits or ctx is done.
func Run(ctx context.Context, input io.Reader, output io.Writer, interval time.Duration, fetch FetchFunc, render RenderFunc) error {
	p := tea.NewProgram(
		newModel(ctx, interval, fetch, render),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}

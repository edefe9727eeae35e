package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bnema/digital-prison-cli/internal/adapters/render/terminal"
	"github.com/bnema/digital-prison-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const playHelp = "enter send · ctrl+t hint · ctrl+s save · ctrl+l load · ctrl+r reconnect · ctrl+a audio · ctrl+c quit"

// opDoneMsg reports a finished session operation. The session has already
// applied its outcome to the log.
type opDoneMsg struct {
	op  string
	err error
}

type audioToggledMsg struct {
	enabled bool
	err     error
}

type playModel struct {
	ctx      context.Context
	app      *app
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *terminal.Renderer
	snapshot application.Snapshot
	notice   string
	// waitingSince is when the current loading period started.
	waitingSince time.Time
	width        int
	height       int
	ready        bool
}

func newPlayCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(
				newPlayModel(cmd.Context(), app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			_, err := p.Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			return err
		},
	}
}

func newPlayModel(ctx context.Context, app *app) playModel {
	input := textinput.New()
	input.Placeholder = "Enter command..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	return playModel{
		ctx:      ctx,
		app:      app,
		input:    input,
		spinner:  newSpinner(),
		renderer: terminal.NewRenderer(app.render),
		snapshot: app.session.Snapshot(),
	}
}

func (m playModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.runOp("ping", func(ctx context.Context) error {
			m.app.session.Warmup(ctx)
			return nil
		}),
		m.runOp("init", m.app.session.Init),
	)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		opts := m.app.render
		opts.Width = msg.Width
		m.renderer = terminal.NewRenderer(opts)
		m.input.Width = msg.Width - 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			command := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if command == "" {
				return m, nil
			}
			return m, m.runOp("send", func(ctx context.Context) error {
				return m.app.session.Send(ctx, command)
			})
		case "ctrl+t":
			return m, m.runOp("hint", m.app.session.Hint)
		case "ctrl+s":
			return m, m.runOp("save", m.app.session.Save)
		case "ctrl+l":
			return m, m.runOp("load", m.app.session.Load)
		case "ctrl+r":
			return m, m.runOp("init", m.app.session.Init)
		case "ctrl+a":
			return m, m.toggleAudio()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case opDoneMsg:
		if msg.err != nil {
			m.app.logger.Debug("session operation failed", "op", msg.op, "error", msg.err)
		}
		m.refresh()
		return m, nil

	case audioToggledMsg:
		switch {
		case msg.err != nil:
			m.notice = "audio unavailable: " + msg.err.Error()
		case msg.enabled:
			m.notice = ""
		default:
			m.notice = "audio muted"
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.app.session.Loading() != m.snapshot.Loading {
			m.refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) View() string {
	if !m.ready {
		return "Booting terminal..."
	}

	footer := m.input.View()
	help := lipgloss.NewStyle().Faint(true).Render(playHelp)
	if m.snapshot.Loading {
		elapsed := time.Since(m.waitingSince)
		footer = waitLine(m.spinner.View(), "awaiting core response...", elapsed)
		if notice := waitNotice(elapsed); notice != "" {
			help = notice
		}
	}
	if m.notice != "" {
		help = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(m.notice)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		m.renderer.Panel(m.snapshot.State),
		m.viewport.View(),
		footer,
		help,
	)
}

func (m playModel) header() string {
	status := terminal.HeaderStatus{
		Loading:      m.snapshot.Loading,
		AudioEnabled: m.snapshot.AudioEnabled,
	}
	if m.app.audio.Audible() {
		if current, ok := m.app.audio.Current(); ok {
			status.NowPlaying = current.Name
		}
	}
	return m.renderer.Header(m.snapshot.State, status)
}

// refresh pulls a fresh snapshot and re-lays out the viewport, keeping it
// scrolled to the newest entry.
func (m *playModel) refresh() {
	wasLoading := m.snapshot.Loading
	m.snapshot = m.app.session.Snapshot()
	if m.snapshot.Loading && !wasLoading {
		m.waitingSince = time.Now()
	}
	if !m.ready {
		return
	}

	used := lipgloss.Height(m.header()) + lipgloss.Height(m.renderer.Panel(m.snapshot.State)) + 2
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 3)
	m.viewport.SetContent(m.renderer.Log(m.snapshot.Entries))
	m.viewport.GotoBottom()
}

func (m playModel) runOp(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m playModel) toggleAudio() tea.Cmd {
	ctx := m.ctx
	session := m.app.session
	return func() tea.Msg {
		enabled, err := session.ToggleAudio(ctx)
		return audioToggledMsg{enabled: enabled, err: err}
	}
}

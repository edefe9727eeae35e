package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	showElapsedAfter = 3 * time.Second
	wakeNoticeAfter  = 10 * time.Second
	wakeNotice       = "the server may be waking up; this can take about a minute"
)

var waitNoticeStyle = lipgloss.NewStyle().Faint(true)

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("48"))),
	)
}

// waitLine is the spinner line shown while a request is pending.
func waitLine(frame string, label string, elapsed time.Duration) string {
	line := frame + " " + label
	if elapsed >= showElapsedAfter {
		line += fmt.Sprintf(" %ds", int(elapsed/time.Second))
	}
	return line
}

// waitNotice is shown under the spinner once a request is slow enough that a
// sleeping server is the likely cause. Empty before that.
func waitNotice(elapsed time.Duration) string {
	if elapsed < wakeNoticeAfter {
		return ""
	}
	return waitNoticeStyle.Render(wakeNotice)
}

type requestFinishedMsg struct {
	err error
}

type requestSpinner struct {
	spinner spinner.Model
	label   string
	started time.Time
	elapsed time.Duration
	request tea.Cmd
	err     error
	done    bool
}

func (m requestSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m requestSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case requestFinishedMsg:
		m.done, m.err = true, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m requestSpinner) View() string {
	if m.done {
		return ""
	}
	line := waitLine(m.spinner.View(), m.label, m.elapsed)
	if notice := waitNotice(m.elapsed); notice != "" {
		line += "\n  " + notice
	}
	return line
}

// runRequestSpinner animates label on output until request returns, then
// returns the request's error.
func runRequestSpinner(ctx context.Context, output io.Writer, label string, request func(context.Context) error) error {
	model := requestSpinner{
		spinner: newSpinner(),
		label:   label,
		started: time.Now(),
		request: func() tea.Msg {
			return requestFinishedMsg{err: request(ctx)}
		},
	}

	final, err := tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(output), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := final.(requestSpinner)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}
	return result.err
}

package terminal

import (
	"fmt"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/application"
	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	gameTitle    = "THE DIGITAL PRISON"
	defaultWidth = 80
	localMarker  = "◌"
)

type RenderOptions struct {
	Width int
	// Markdown renders narrative entries through glamour.
	Markdown bool
	// MarkdownStyle is a glamour standard style name; "dark" when empty.
	MarkdownStyle string
	NowPlaying    string
}

// HeaderStatus is the part of the header that changes between frames.
type HeaderStatus struct {
	Loading      bool
	AudioEnabled bool
	NowPlaying   string
}

// Renderer formats the session for a terminal. It is not safe for concurrent
// use.
type Renderer struct {
	opts   RenderOptions
	styles styles
	md     markdown
}

func NewRenderer(opts RenderOptions) *Renderer {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	r := &Renderer{opts: opts, styles: newStyles()}
	if opts.Markdown {
		r.md = newMarkdown(opts.MarkdownStyle, opts.Width)
	}
	return r
}

// Header is the one-line title bar with audio state and sector badge.
func (r *Renderer) Header(state domain.SessionState, status HeaderStatus) string {
	s := r.styles

	net := "NET: ONLINE"
	if status.Loading {
		net = "CONNECTING..."
	}

	audio := s.audioOff.Render("[AUDIO: OFF]")
	if status.AudioEnabled {
		audio = s.audioOn.Render("[AUDIO: ON]")
		if status.NowPlaying != "" {
			audio += " " + s.audioOn.Render("♪ "+status.NowPlaying)
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.title.Render(gameTitle),
		"  ",
		audio,
		"  ",
		s.header.Render(net),
		"  ",
		s.badge.Render("SEC: "+application.SectorLabel(state.Location)),
	)
}

// Panel renders the derived status: system status, location, inventory and
// the current image caption.
func (r *Renderer) Panel(state domain.SessionState) string {
	s := r.styles

	lines := []string{
		s.label.Render("STATUS   ") + s.value.Render(state.Status),
		s.label.Render("LOCATION ") + s.value.Render(state.Location),
		s.label.Render("INVENTORY"),
	}

	if len(state.Inventory) == 0 {
		lines = append(lines, s.empty.Render("  (empty)"))
	}
	for _, item := range state.Inventory {
		lines = append(lines, "  • "+string(item))
	}

	if state.CurrentImage != nil {
		lines = append(lines, s.label.Render("VISUAL"), "  "+s.image.Render(imageLine(*state.CurrentImage)))
	}

	width := r.opts.Width - 2
	if width < 20 {
		width = 20
	}
	return s.panel.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Log renders the transcript, oldest first. State updates are not shown.
func (r *Renderer) Log(entries []domain.LogEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		line, ok := r.entry(entry)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return r.styles.empty.Render("No transmissions yet.")
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) entry(entry domain.LogEntry) (string, bool) {
	s := r.styles
	style := s.forType(entry.Type)

	switch entry.Type {
	case domain.EntryTypeUIUpdate:
		return "", false
	case domain.EntryTypeUserInput:
		return style.Render("> " + entry.Text), true
	case domain.EntryTypeImage:
		return style.Render(imageLine(entry)), true
	case domain.EntryTypeText, domain.EntryTypeMessage:
		text := entry.Text
		if r.md.renderer != nil {
			text = r.md.render(text)
		} else {
			text = style.Render(text)
		}
		return r.prefix(entry) + text, true
	default:
		return r.prefix(entry) + style.Render(entry.Text), true
	}
}

func (r *Renderer) prefix(entry domain.LogEntry) string {
	prefix := ""
	if entry.Local {
		prefix = r.styles.local.Render(localMarker) + " "
	}
	if entry.Agent != "" {
		prefix += r.styles.agent.Render(fmt.Sprintf("[%s]", entry.Agent)) + " "
	}
	return prefix
}

func imageLine(entry domain.LogEntry) string {
	line := "[VISUAL] " + entry.Caption()
	if entry.URL != "" {
		line += " <" + entry.URL + ">"
	}
	return line
}

// Width reports the configured render width.
func (r *Renderer) Width() int {
	return r.opts.Width
}

// Render draws a whole session snapshot once, for non-interactive commands.
func Render(snapshot application.Snapshot, opts RenderOptions) string {
	r := NewRenderer(opts)
	status := HeaderStatus{
		Loading:      snapshot.Loading,
		AudioEnabled: snapshot.AudioEnabled,
		NowPlaying:   opts.NowPlaying,
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.Header(snapshot.State, status),
		r.Panel(snapshot.State),
		r.Log(snapshot.Entries),
	)
}

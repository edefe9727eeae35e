package terminal

import (
	"testing"

	"github.com/bnema/digital-prison-cli/internal/application"
	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() application.Snapshot {
	return application.Snapshot{
		Entries: []domain.LogEntry{
			{Agent: "SYSTEM", Type: domain.EntryTypeText, Text: "SYSTEM BOOT"},
			{Agent: "SYSTEM", Type: domain.EntryTypeSuccess, Text: "[LOCAL] scanning", Local: true},
			{Agent: "AI", Type: domain.EntryTypeImage, Content: "a rusted door", URL: "https://img.example/door.png"},
			{Agent: "SYSTEM", Type: domain.EntryTypeUIUpdate, Status: "ALERT", Location: "구역 3: 보관소"},
			{Agent: "SYSTEM", Type: domain.EntryTypeError, Text: "ERROR: Connection lost."},
			{Agent: "USER", Type: domain.EntryTypeUserInput, Text: "open door"},
		},
		State: domain.SessionState{
			Status:    "ALERT",
			Location:  "구역 3: 보관소",
			Inventory: []domain.Item{"keycard", "rusty spoon"},
			CurrentImage: &domain.LogEntry{
				Type: domain.EntryTypeImage, Content: "a rusted door",
			},
		},
	}
}

func TestRenderSnapshot(t *testing.T) {
	t.Parallel()

	output := Render(sampleSnapshot(), RenderOptions{Width: 80})

	assert.Contains(t, output, "THE DIGITAL PRISON")
	assert.Contains(t, output, "SEC: 03")
	assert.Contains(t, output, "[AUDIO: OFF]")
	assert.Contains(t, output, "ALERT")
	assert.Contains(t, output, "keycard")
	assert.Contains(t, output, "[VISUAL] a rusted door")
	assert.Contains(t, output, "SYSTEM BOOT")
	assert.Contains(t, output, localMarker)
	assert.Contains(t, output, "ERROR: Connection lost.")
	assert.Contains(t, output, "> open door")
}

func TestRenderInitialStateIsOffline(t *testing.T) {
	t.Parallel()

	output := Render(application.Snapshot{State: domain.InitialSessionState(), Loading: true}, RenderOptions{})

	assert.Contains(t, output, domain.StatusOffline)
	assert.Contains(t, output, domain.LocationUnknown)
	assert.Contains(t, output, "SEC: 00")
	assert.Contains(t, output, "CONNECTING...")
	assert.Contains(t, output, "(empty)")
	assert.Contains(t, output, "No transmissions yet.")
}

func TestLogSkipsStateUpdates(t *testing.T) {
	t.Parallel()

	r := NewRenderer(RenderOptions{})
	out := r.Log([]domain.LogEntry{
		{Type: domain.EntryTypeUIUpdate, Text: "hidden status"},
		{Type: domain.EntryTypeMessage, Text: "visible narration"},
		{Type: "hologram", Text: "unknown but shown"},
	})

	assert.NotContains(t, out, "hidden status")
	assert.Contains(t, out, "visible narration")
	assert.Contains(t, out, "unknown but shown")
}

func TestHeaderShowsNowPlayingWhenAudioEnabled(t *testing.T) {
	t.Parallel()

	r := NewRenderer(RenderOptions{})
	out := r.Header(domain.SessionState{Location: "구역 2: 복도"}, HeaderStatus{AudioEnabled: true, NowPlaying: "Data Corridor"})

	assert.Contains(t, out, "[AUDIO: ON]")
	assert.Contains(t, out, "Data Corridor")
	assert.Contains(t, out, "SEC: 02")

	muted := r.Header(domain.SessionState{}, HeaderStatus{NowPlaying: "Data Corridor"})
	assert.Contains(t, muted, "[AUDIO: OFF]")
	assert.NotContains(t, muted, "Data Corridor")
}

func TestMarkdownNarration(t *testing.T) {
	t.Parallel()

	r := NewRenderer(RenderOptions{Markdown: true, MarkdownStyle: "notty", Width: 60})
	out := r.Log([]domain.LogEntry{
		{Agent: "AI", Type: domain.EntryTypeText, Text: "The cell is *damp*."},
	})

	assert.Contains(t, out, "[AI]")
	assert.Contains(t, out, "The cell is")
	assert.Contains(t, out, "damp")
}

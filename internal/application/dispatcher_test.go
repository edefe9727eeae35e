package application

import (
	"testing"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uiUpdate(status string, location string, items ...domain.Item) domain.LogEntry {
	return domain.LogEntry{Agent: domain.AgentSystem, Type: domain.EntryTypeUIUpdate, Status: status, Location: location, Inventory: items}
}

func TestReduceUIUpdateSetsStatusInventoryAndLocation(t *testing.T) {
	t.Parallel()

	state := Reduce(domain.InitialSessionState(), []domain.LogEntry{
		uiUpdate("CONNECTED", "격리 구역 0", "keycard"),
	})

	assert.Equal(t, "CONNECTED", state.Status)
	assert.Equal(t, "격리 구역 0", state.Location)
	assert.Equal(t, []domain.Item{"keycard"}, state.Inventory)
}

func TestReduceUIUpdateDefaultsStatusAndKeepsLocation(t *testing.T) {
	t.Parallel()

	state := Reduce(domain.InitialSessionState(), []domain.LogEntry{
		uiUpdate("ALERT", "구역 2: 복도", "keycard"),
		uiUpdate("", ""),
	})

	assert.Equal(t, domain.StatusStable, state.Status)
	assert.Equal(t, "구역 2: 복도", state.Location)
	assert.Empty(t, state.Inventory)
	assert.NotNil(t, state.Inventory)
}

func TestReduceImageSetsCurrentImage(t *testing.T) {
	t.Parallel()

	state := Reduce(domain.InitialSessionState(), []domain.LogEntry{
		{Agent: "AI", Type: domain.EntryTypeImage, Content: "a rusted door", URL: "https://img.example/1.png"},
		{Agent: "AI", Type: domain.EntryTypeImage, Content: "a terminal", URL: "https://img.example/2.png"},
	})

	require.NotNil(t, state.CurrentImage)
	assert.Equal(t, "a terminal", state.CurrentImage.Caption())
	assert.Equal(t, "https://img.example/2.png", state.CurrentImage.URL)
}

func TestReduceIgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	initial := domain.InitialSessionState()
	state := Reduce(initial, []domain.LogEntry{
		{Agent: "AI", Type: domain.EntryTypeText, Text: "구역 9", Location: "구역 9"},
		{Agent: "AI", Type: domain.EntryTypeMessage, Text: "narration"},
		{Agent: "AI", Type: "hologram", Text: "unknown", Status: "HACKED"},
		domain.SystemEntry(domain.EntryTypeError, "boom"),
	})

	assert.Equal(t, initial, state)
}

func TestReduceIsAssociative(t *testing.T) {
	t.Parallel()

	a := []domain.LogEntry{uiUpdate("ONE", "구역 1", "a")}
	b := []domain.LogEntry{
		{Agent: "AI", Type: domain.EntryTypeImage, Content: "c"},
		uiUpdate("TWO", "", "b"),
	}

	stepwise := Reduce(Reduce(domain.InitialSessionState(), a), b)
	combined := Reduce(domain.InitialSessionState(), append(append([]domain.LogEntry{}, a...), b...))

	assert.Equal(t, combined, stepwise)
}

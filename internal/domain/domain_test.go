package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntriesDropsNullUntypedAndUndecodable(t *testing.T) {
	t.Parallel()

	raw := []json.RawMessage{
		json.RawMessage(`{"agent":"Scenario Master","text":"You wake up.","type":"message"}`),
		json.RawMessage(`null`),
		json.RawMessage(`{"agent":"SYSTEM","text":"no type here"}`),
		json.RawMessage(`{"agent":"SYSTEM","text":"","type":42}`),
		json.RawMessage(`{"agent":"SYSTEM","text":"","type":"ui_update","status":"SYSTEM ONLINE","inventory":["keycard"],"location":"격리 구역 0"}`),
	}

	entries, dropped := DecodeEntries(raw)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, EntryTypeMessage, entries[0].Type)
	assert.Equal(t, EntryTypeUIUpdate, entries[1].Type)
	assert.Equal(t, []Item{"keycard"}, entries[1].Inventory)
	assert.Equal(t, "격리 구역 0", entries[1].Location)
}

func TestItemDecodesStringOrNamedObject(t *testing.T) {
	t.Parallel()

	var items []Item
	require.NoError(t, json.Unmarshal([]byte(`["rusty key", {"name":"keycard","rarity":"rare"}]`), &items))
	assert.Equal(t, []Item{"rusty key", "keycard"}, items)

	var bad []Item
	assert.Error(t, json.Unmarshal([]byte(`[{"rarity":"rare"}]`), &bad))
}

func TestLogEntryRoundTripKeepsImagePayload(t *testing.T) {
	t.Parallel()

	entry := LogEntry{Agent: "illustrator", Type: EntryTypeImage, Content: "A cell.", URL: "/assets/sector_0.png"}
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"agent":"illustrator","text":"","type":"image","content":"A cell.","url":"/assets/sector_0.png"}`, string(data))
	assert.Equal(t, "A cell.", entry.Caption())
}

func TestSaveBlobPresence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		blob  SaveBlob
		empty bool
	}{
		{name: "nil", blob: nil, empty: true},
		{name: "null", blob: SaveBlob(`null`), empty: true},
		{name: "whitespace", blob: SaveBlob("  \n"), empty: true},
		{name: "empty object is present", blob: SaveBlob(`{}`), empty: false},
		{name: "state", blob: SaveBlob(`{"current_sector":2}`), empty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.blob.IsEmpty())
		})
	}
}

func TestSaveBlobIsEmbeddedVerbatim(t *testing.T) {
	t.Parallel()

	payload := struct {
		State SaveBlob `json:"state"`
	}{State: SaveBlob(`{"inventory":["a"],"current_sector":1}`)}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"inventory":["a"],"current_sector":1}}`, string(data))

	var decoded struct {
		State SaveBlob `json:"state"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `{"inventory":["a"],"current_sector":1}`, string(decoded.State))
}

func TestSessionErrorKindAndMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("init session: %w", &SessionError{Kind: ErrorKindUnreachable, Op: "init", Err: cause})

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindUnreachable, kind)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "init: unreachable: dial tcp: connection refused")

	serverErr := &SessionError{Kind: ErrorKindServer, Op: "act", Status: 500, Message: "CORE LOGIC FAILURE"}
	assert.Equal(t, "act: server_error (status 500): CORE LOGIC FAILURE", serverErr.Error())
}

func TestKindOfNoSavedState(t *testing.T) {
	t.Parallel()

	kind, ok := KindOf(fmt.Errorf("load: %w", ErrNoSavedState))
	require.True(t, ok)
	assert.Equal(t, ErrorKindNoSavedState, kind)

	tagged := &SessionError{Kind: ErrorKindNoSavedState}
	assert.ErrorIs(t, tagged, ErrNoSavedState)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestInitialSessionState(t *testing.T) {
	t.Parallel()

	state := InitialSessionState()
	assert.Equal(t, StatusOffline, state.Status)
	assert.Equal(t, LocationUnknown, state.Location)
	assert.Empty(t, state.Inventory)
	assert.Nil(t, state.CurrentImage)
}

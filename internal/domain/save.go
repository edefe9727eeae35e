package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// SaveBlob is the server's opaque game state. The client only checks that
// one is present.
type SaveBlob json.RawMessage

func (b SaveBlob) IsEmpty() bool {
	trimmed := bytes.TrimSpace(b)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (b SaveBlob) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return []byte("null"), nil
	}
	return json.RawMessage(b).MarshalJSON()
}

func (b *SaveBlob) UnmarshalJSON(data []byte) error {
	*b = append((*b)[:0], data...)
	return nil
}

type SaveRecord struct {
	Slot    string
	State   SaveBlob
	SavedAt time.Time
}

package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type EntryType string

const (
	EntryTypeText      EntryType = "text"
	EntryTypeImage     EntryType = "image"
	EntryTypeUIUpdate  EntryType = "ui_update"
	EntryTypeError     EntryType = "error"
	EntryTypeSuccess   EntryType = "success"
	EntryTypeWarning   EntryType = "warning"
	EntryTypeUserInput EntryType = "user_input"
	// EntryTypeMessage is what the game server emits for narrative lines.
	EntryTypeMessage EntryType = "message"
)

const (
	AgentSystem = "SYSTEM"
	AgentUser   = "USER"
)

type LogEntry struct {
	Agent     string    `json:"agent"`
	Text      string    `json:"text"`
	Type      EntryType `json:"type"`
	Status    string    `json:"status,omitempty"`
	Inventory []Item    `json:"inventory,omitempty"`
	Location  string    `json:"location,omitempty"`
	Content   string    `json:"content,omitempty"`
	URL       string    `json:"url,omitempty"`
	// Local marks entries synthesized by the client before the server answered.
	Local bool `json:"local,omitempty"`
}

func SystemEntry(entryType EntryType, text string) LogEntry {
	return LogEntry{Agent: AgentSystem, Text: text, Type: entryType}
}

// Caption is the text shown for an image entry.
func (e LogEntry) Caption() string {
	if e.Content != "" {
		return e.Content
	}
	return e.Text
}

type Item string

func (i *Item) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*i = Item(name)
		return nil
	}

	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return fmt.Errorf("decode inventory item: %w", err)
	}
	if named.Name == "" {
		return errors.New("decode inventory item: missing name")
	}

	*i = Item(named.Name)
	return nil
}

// DecodeEntries converts a raw log batch into entries. Null entries, entries
// that do not decode and entries without a type are dropped; dropped reports
// how many.
func DecodeEntries(raw []json.RawMessage) (entries []LogEntry, dropped int) {
	entries = make([]LogEntry, 0, len(raw))
	for _, item := range raw {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			dropped++
			continue
		}

		var entry LogEntry
		if err := json.Unmarshal(trimmed, &entry); err != nil {
			dropped++
			continue
		}
		if entry.Type == "" {
			dropped++
			continue
		}

		entries = append(entries, entry)
	}

	return entries, dropped
}

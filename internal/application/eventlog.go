package application

import (
	"log/slog"

	"github.com/bnema/digital-prison-cli/internal/domain"
)

// EventLog is the ordered narrative history together with the state derived
// from it. It is not safe for concurrent use; Session owns it.
type EventLog struct {
	entries []domain.LogEntry
	state   domain.SessionState
	logger  *slog.Logger
}

func NewEventLog(logger *slog.Logger) *EventLog {
	if logger == nil {
		logger = slog.Default()
	}

	return &EventLog{
		entries: []domain.LogEntry{},
		state:   domain.InitialSessionState(),
		logger:  logger,
	}
}

// Append extends the log. A nil batch is not a well-formed sequence and is
// ignored.
func (l *EventLog) Append(entries []domain.LogEntry) bool {
	if entries == nil {
		l.logger.Warn("ignoring invalid log batch", "op", "append")
		return false
	}

	l.entries = append(l.entries, entries...)
	l.state = Reduce(l.state, entries)
	return true
}

// Replace discards the history and installs entries. Derived state is
// recomputed from scratch, so it matches a fresh log with entries appended.
func (l *EventLog) Replace(entries []domain.LogEntry) bool {
	if entries == nil {
		l.logger.Warn("ignoring invalid log batch", "op", "replace")
		return false
	}

	l.Clear()
	return l.Append(entries)
}

func (l *EventLog) Clear() {
	l.entries = []domain.LogEntry{}
	l.state = domain.InitialSessionState()
}

func (l *EventLog) Entries() []domain.LogEntry {
	entries := make([]domain.LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *EventLog) Len() int {
	return len(l.entries)
}

func (l *EventLog) State() domain.SessionState {
	state := l.state
	state.Inventory = append([]domain.Item{}, l.state.Inventory...)
	if l.state.CurrentImage != nil {
		image := *l.state.CurrentImage
		state.CurrentImage = &image
	}

	return state
}

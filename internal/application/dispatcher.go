package application

import "github.com/bnema/digital-prison-cli/internal/domain"

// Reduce folds a batch of log entries into the derived session state. It is
// pure: reducing A then B equals reducing A+B.
func Reduce(state domain.SessionState, entries []domain.LogEntry) domain.SessionState {
	for i := range entries {
		state = reduceEntry(state, entries[i])
	}

	return state
}

func reduceEntry(state domain.SessionState, entry domain.LogEntry) domain.SessionState {
	switch entry.Type {
	case domain.EntryTypeImage:
		image := entry
		state.CurrentImage = &image
	case domain.EntryTypeUIUpdate:
		state.Status = entry.Status
		if state.Status == "" {
			state.Status = domain.StatusStable
		}

		state.Inventory = append([]domain.Item{}, entry.Inventory...)

		// A missing location is a partial update, not a reset.
		if entry.Location != "" {
			state.Location = entry.Location
		}
	}

	return state
}

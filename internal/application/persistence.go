package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/ports"
)

// SaveSlot is the durable-storage key holding the most recent save.
const SaveSlot = "digital_prison_save"

var errEmptySaveBlob = errors.New("save blob is empty")

type Persistence struct {
	store ports.SaveStore
	clock ports.Clock
	slot  string
}

func NewPersistence(store ports.SaveStore, clock ports.Clock) *Persistence {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Persistence{store: store, clock: clock, slot: SaveSlot}
}

func (p *Persistence) Save(ctx context.Context, blob domain.SaveBlob) error {
	if blob.IsEmpty() {
		return errEmptySaveBlob
	}
	if !json.Valid(blob) {
		return &domain.SessionError{Kind: domain.ErrorKindMalformedResponse, Op: "save", Message: "save blob is not valid JSON"}
	}

	record := domain.SaveRecord{
		Slot:    p.slot,
		State:   append(domain.SaveBlob(nil), blob...),
		SavedAt: p.clock.Now(),
	}
	if err := p.store.Put(ctx, record); err != nil {
		return fmt.Errorf("store save blob: %w", err)
	}

	return nil
}

// Load returns the saved blob. An empty slot yields domain.ErrNoSavedState;
// unreadable data yields a MalformedResponse SessionError.
func (p *Persistence) Load(ctx context.Context) (domain.SaveBlob, error) {
	record, err := p.store.Get(ctx, p.slot)
	if err != nil {
		if errors.Is(err, domain.ErrNoSavedState) {
			return nil, domain.ErrNoSavedState
		}
		var sessionErr *domain.SessionError
		if errors.As(err, &sessionErr) {
			return nil, err
		}
		return nil, fmt.Errorf("read save blob: %w", err)
	}

	if record.State.IsEmpty() {
		return nil, domain.ErrNoSavedState
	}
	if !json.Valid(record.State) {
		return nil, &domain.SessionError{Kind: domain.ErrorKindMalformedResponse, Op: "load", Message: "saved state is not valid JSON"}
	}

	return record.State, nil
}

func (p *Persistence) Forget(ctx context.Context) error {
	if err := p.store.Delete(ctx, p.slot); err != nil {
		return fmt.Errorf("delete save blob: %w", err)
	}
	return nil
}

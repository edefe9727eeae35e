package ports

import (
	"context"

	"github.com/bnema/digital-prison-cli/internal/domain"
)

type SaveStore interface {
	// Get returns domain.ErrNoSavedState when the slot is empty.
	Get(ctx context.Context, slot string) (domain.SaveRecord, error)
	Put(ctx context.Context, record domain.SaveRecord) error
	Delete(ctx context.Context, slot string) error
}

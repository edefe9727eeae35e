package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistenceSaveStoresRecordWithTimestamp(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	clock := mocks.NewMockClock(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	store.EXPECT().Put(mockAnyContext(), domain.SaveRecord{
		Slot:    SaveSlot,
		State:   domain.SaveBlob(`{"current_sector":1}`),
		SavedAt: now,
	}).Return(nil).Once()

	err := NewPersistence(store, clock).Save(context.Background(), domain.SaveBlob(`{"current_sector":1}`))
	require.NoError(t, err)
}

func TestPersistenceSaveRejectsEmptyAndInvalidBlobs(t *testing.T) {
	t.Parallel()

	persistence := NewPersistence(mocks.NewMockSaveStore(t), mocks.NewMockClock(t))

	require.Error(t, persistence.Save(context.Background(), nil))

	err := persistence.Save(context.Background(), domain.SaveBlob(`{broken`))
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorKindMalformedResponse, kind)
}

func TestPersistenceSaveWrapsStoreError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Time{})
	store.EXPECT().Put(mockAnyContext(), mockAnything()).Return(errors.New("disk full")).Once()

	err := NewPersistence(store, clock).Save(context.Background(), domain.SaveBlob(`{}`))
	assert.ErrorContains(t, err, "store save blob: disk full")
}

func TestPersistenceLoadReturnsStoredBlobVerbatim(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	blob := domain.SaveBlob(`{"current_sector":3,"inventory":["keycard"]}`)
	store.EXPECT().Get(mockAnyContext(), SaveSlot).Return(domain.SaveRecord{Slot: SaveSlot, State: blob}, nil).Once()

	got, err := NewPersistence(store, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestPersistenceLoadReportsNoSavedState(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	store.EXPECT().Get(mockAnyContext(), SaveSlot).Return(domain.SaveRecord{}, domain.ErrNoSavedState).Once()
	store.EXPECT().Get(mockAnyContext(), SaveSlot).Return(domain.SaveRecord{Slot: SaveSlot, State: domain.SaveBlob("null")}, nil).Once()

	persistence := NewPersistence(store, nil)

	_, err := persistence.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSavedState)
	_, err = persistence.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSavedState)
}

func TestPersistenceLoadRejectsCorruptSlot(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	store.EXPECT().Get(mockAnyContext(), SaveSlot).Return(domain.SaveRecord{Slot: SaveSlot, State: domain.SaveBlob(`{oops`)}, nil).Once()

	_, err := NewPersistence(store, nil).Load(context.Background())
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorKindMalformedResponse, kind)
}

func TestPersistenceForgetDeletesSlot(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSaveStore(t)
	store.EXPECT().Delete(mockAnyContext(), SaveSlot).Return(nil).Once()

	require.NoError(t, NewPersistence(store, nil).Forget(context.Background()))
}

package theme

import (
	"context"
	"sync"
	"testing"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	themes []Theme
}

func (r *recorder) listen(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = append(r.themes, t)
}

func (r *recorder) sectors() []domain.SectorID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SectorID, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, t.Sector)
	}
	return out
}

func TestEngineStartsMutedWithoutTheme(t *testing.T) {
	t.Parallel()

	state := New().State()
	assert.True(t, state.Muted)
	assert.Nil(t, state.CurrentTheme)
}

func TestPlayThemeSkipsRepeatedSector(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	engine := New(WithListener(rec.listen))

	engine.PlayTheme(1)
	engine.PlayTheme(1)
	engine.PlayTheme(2)
	engine.PlayTheme(1)

	assert.Equal(t, []domain.SectorID{1, 2, 1}, rec.sectors())
	current, ok := engine.Current()
	require.True(t, ok)
	assert.Equal(t, "Holding Cells", current.Name)
}

func TestClearThemeAllowsReplay(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	engine := New(WithListener(rec.listen))

	engine.PlayTheme(3)
	engine.ClearTheme()
	assert.Nil(t, engine.State().CurrentTheme)
	engine.PlayTheme(3)

	assert.Equal(t, []domain.SectorID{3, 3}, rec.sectors())
}

func TestToggleMuteFlips(t *testing.T) {
	t.Parallel()

	engine := New()
	assert.False(t, engine.ToggleMute())
	assert.True(t, engine.ToggleMute())
}

func TestResumeRequiresInit(t *testing.T) {
	t.Parallel()

	engine := New()
	require.ErrorIs(t, engine.Resume(context.Background()), ErrNotInitialized)
	require.NoError(t, engine.Init(context.Background()))
	require.NoError(t, engine.Resume(context.Background()))
	assert.False(t, engine.Audible())
	engine.ToggleMute()
	assert.True(t, engine.Audible())
}

func TestClosedEngineIgnoresThemes(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	engine := New(WithListener(rec.listen))
	require.NoError(t, engine.Close())

	engine.PlayTheme(1)
	assert.Empty(t, rec.sectors())
	assert.ErrorIs(t, engine.Init(context.Background()), ErrClosed)
}

func TestLookupFallsBackForUnknownSector(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sector 42", Lookup(42).Name)
	assert.Equal(t, "Sector 00", Lookup(0).Name)
	assert.Equal(t, "Core Archive", Lookup(4).Name)
}

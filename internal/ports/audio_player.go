package ports

import (
	"context"

	"github.com/bnema/digital-prison-cli/internal/domain"
)

type AudioPlayer interface {
	Init(ctx context.Context) error
	Resume(ctx context.Context) error
	// PlayTheme is a no-op when sector is already the current theme.
	PlayTheme(sector domain.SectorID)
	// ClearTheme forgets the current theme so the next PlayTheme always plays.
	ClearTheme()
	// ToggleMute flips the mute state and reports whether audio is now muted.
	ToggleMute() bool
}

package ports

import (
	"context"

	"github.com/bnema/digital-prison-cli/internal/domain"
)

// RemoteSession is the game server. Failures are *domain.SessionError values.
type RemoteSession interface {
	Init(ctx context.Context) ([]domain.LogEntry, error)
	Act(ctx context.Context, command string) ([]domain.LogEntry, error)
	Hint(ctx context.Context) ([]domain.LogEntry, error)
	// Save returns an empty blob when the server had nothing to report.
	Save(ctx context.Context) (domain.SaveBlob, error)
	Load(ctx context.Context, blob domain.SaveBlob) ([]domain.LogEntry, error)
	Ping(ctx context.Context) error
}

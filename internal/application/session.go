package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/observe"
	"github.com/bnema/digital-prison-cli/internal/ports"
	"golang.org/x/sync/singleflight"
)

var ErrAudioUnavailable = errors.New("audio player unavailable")

type SessionConfig struct {
	Remote       ports.RemoteSession
	Persistence  *Persistence
	Audio        ports.AudioPlayer
	Preprocessor *Preprocessor
	// ServerLabel names the server in fatal connection messages.
	ServerLabel string
	Metrics     *observe.Metrics
	Logger      *slog.Logger
}

// Session is the single owner of the event log, the derived state and the
// theme trigger. Remote calls run outside the lock; their results are applied
// in completion order.
//
// Identical operations issued while one is in flight share its outcome and
// are applied once. Every failure is recorded in the log as one error or
// warning entry; the returned error is the same failure, for callers that
// need an exit status.
type Session struct {
	mu           sync.Mutex
	log          *EventLog
	trigger      *ThemeTrigger
	audioEnabled bool

	remote       ports.RemoteSession
	persistence  *Persistence
	audio        ports.AudioPlayer
	preprocessor *Preprocessor
	serverLabel  string
	metrics      *observe.Metrics
	logger       *slog.Logger

	flights  singleflight.Group
	inflight atomic.Int32
}

type Snapshot struct {
	Entries      []domain.LogEntry
	State        domain.SessionState
	Loading      bool
	AudioEnabled bool
}

func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		log:          NewEventLog(logger),
		trigger:      NewThemeTrigger(cfg.Audio),
		remote:       cfg.Remote,
		persistence:  cfg.Persistence,
		audio:        cfg.Audio,
		preprocessor: cfg.Preprocessor,
		serverLabel:  cfg.ServerLabel,
		metrics:      cfg.Metrics,
		logger:       logger,
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Entries:      s.log.Entries(),
		State:        s.log.State(),
		Loading:      s.Loading(),
		AudioEnabled: s.audioEnabled,
	}
}

// Loading reports whether any remote operation is in flight. It is advisory.
func (s *Session) Loading() bool {
	return s.inflight.Load() > 0
}

// Init starts a fresh game and replaces the log with the server's.
func (s *Session) Init(ctx context.Context) error {
	return s.flight(ctx, "init", func(ctx context.Context) error {
		entries, err := s.remote.Init(ctx)
		if err != nil {
			s.logger.Error("init session failed", "error", err)
			s.append(initFailureEntry(err, s.serverLabel))
			return fmt.Errorf("init session: %w", err)
		}

		s.count(ctx, entries)
		s.apply(func(l *EventLog) { l.Replace(entries) })
		return nil
	})
}

// Send forwards a player command. Blank commands are ignored.
func (s *Session) Send(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	// Sends are never coalesced; each command is its own action.
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	s.apply(func(l *EventLog) {
		if ack, ok := s.preprocessor.Acknowledge(l.state.Location, command); ok {
			l.Append([]domain.LogEntry{ack})
		}
	})

	entries, err := s.remote.Act(ctx, command)
	if err != nil {
		s.logger.Error("send command failed", "error", err)
		s.append(actFailureEntry(err))
		return fmt.Errorf("send command: %w", err)
	}

	s.count(ctx, entries)
	s.apply(func(l *EventLog) { l.Append(entries) })
	return nil
}

func (s *Session) Hint(ctx context.Context) error {
	return s.flight(ctx, "hint", func(ctx context.Context) error {
		entries, err := s.remote.Hint(ctx)
		if err != nil {
			s.logger.Error("request hint failed", "error", err)
			s.append(hintFailureEntry(err))
			return fmt.Errorf("request hint: %w", err)
		}

		s.count(ctx, entries)
		s.apply(func(l *EventLog) { l.Append(entries) })
		return nil
	})
}

// Save asks the server for its state and stores it locally. A response
// without state is not reported.
func (s *Session) Save(ctx context.Context) error {
	return s.flight(ctx, "save", func(ctx context.Context) error {
		blob, err := s.remote.Save(ctx)
		if err != nil {
			s.logger.Error("save session failed", "error", err)
			s.append(domain.SystemEntry(domain.EntryTypeError, msgSaveFailed))
			return fmt.Errorf("save session: %w", err)
		}
		if blob.IsEmpty() {
			s.logger.Debug("save response carried no state")
			return nil
		}

		if err := s.persistence.Save(ctx, blob); err != nil {
			s.logger.Error("persist save blob failed", "error", err)
			s.append(domain.SystemEntry(domain.EntryTypeError, msgSaveWriteFailed))
			return fmt.Errorf("save session: %w", err)
		}

		s.append(domain.SystemEntry(domain.EntryTypeSuccess, msgSaveSucceeded))
		return nil
	})
}

// Load restores the locally saved session. With nothing saved it records a
// warning and never contacts the server.
func (s *Session) Load(ctx context.Context) error {
	return s.flight(ctx, "load", func(ctx context.Context) error {
		blob, err := s.persistence.Load(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoSavedState) {
				s.append(domain.SystemEntry(domain.EntryTypeWarning, msgLoadNothing))
				return fmt.Errorf("load session: %w", err)
			}
			s.logger.Error("read local save failed", "error", err)
			s.append(domain.SystemEntry(domain.EntryTypeError, msgLoadCorrupt))
			return fmt.Errorf("load session: %w", err)
		}

		entries, err := s.remote.Load(ctx, blob)
		if err != nil {
			s.logger.Error("load session failed", "error", err)
			s.append(loadFailureEntry(err))
			return fmt.Errorf("load session: %w", err)
		}

		s.count(ctx, entries)
		s.apply(func(l *EventLog) { l.Replace(entries) })
		return nil
	})
}

// Warmup pings the server so a sleeping host starts waking up. Failures are
// only logged.
func (s *Session) Warmup(ctx context.Context) {
	if err := s.remote.Ping(ctx); err != nil {
		s.logger.Debug("ping failed", "error", err)
	}
}

// ToggleAudio flips audio on or off. Enabling it for the first time
// initializes the player and replays the current sector's theme.
func (s *Session) ToggleAudio(ctx context.Context) (bool, error) {
	if s.audio == nil {
		return false, ErrAudioUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.audioEnabled {
		if err := s.audio.Init(ctx); err != nil {
			return false, fmt.Errorf("init audio: %w", err)
		}
		if err := s.audio.Resume(ctx); err != nil {
			return false, fmt.Errorf("resume audio: %w", err)
		}
		s.trigger.Force(s.log.state.Location)
	}

	muted := s.audio.ToggleMute()
	s.audioEnabled = !muted
	return s.audioEnabled, nil
}

func (s *Session) flight(ctx context.Context, key string, fn func(context.Context) error) error {
	_, err, shared := s.flights.Do(key, func() (any, error) {
		s.inflight.Add(1)
		defer s.inflight.Add(-1)
		return nil, fn(ctx)
	})
	if shared {
		s.logger.Debug("coalesced concurrent request", "op", key)
	}
	return err
}

func (s *Session) count(ctx context.Context, entries []domain.LogEntry) {
	for _, entry := range entries {
		s.metrics.RecordLogEntry(ctx, string(entry.Type))
	}
}

func (s *Session) append(entries ...domain.LogEntry) {
	s.apply(func(l *EventLog) { l.Append(entries) })
}

// apply mutates the log under the lock and fires the theme trigger when the
// derived location changed.
func (s *Session) apply(mutate func(l *EventLog)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.log.state.Location
	mutate(s.log)
	if after := s.log.state.Location; after != before {
		s.trigger.Observe(after)
	}
}

// Package theme is the client's ambient audio session. It tracks which
// sector theme is current and whether output is muted, and publishes theme
// changes to a listener that renders them.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/bnema/digital-prison-cli/internal/observe"
	"github.com/bnema/digital-prison-cli/internal/ports"
)

var _ ports.AudioPlayer = (*Engine)(nil)

var (
	ErrClosed         = errors.New("audio engine closed")
	ErrNotInitialized = errors.New("audio engine not initialized")
)

// Theme is the ambient loop for one sector.
type Theme struct {
	Sector domain.SectorID
	Name   string
	Mood   string
}

var catalogue = map[domain.SectorID]Theme{
	1: {Sector: 1, Name: "Holding Cells", Mood: "low drone, dripping water"},
	2: {Sector: 2, Name: "Data Corridor", Mood: "pulsing synth, distant fans"},
	3: {Sector: 3, Name: "Surveillance Hub", Mood: "glitching static, radar sweep"},
	4: {Sector: 4, Name: "Core Archive", Mood: "cold pads, slow arpeggio"},
	5: {Sector: 5, Name: "Exit Protocol", Mood: "rising pulse, alarm undertone"},
}

// Lookup returns the catalogued theme for sector, or a generated one.
func Lookup(sector domain.SectorID) Theme {
	if t, ok := catalogue[sector]; ok {
		return t
	}
	return Theme{Sector: sector, Name: fmt.Sprintf("Sector %02d", int(sector)), Mood: "ambient hum"}
}

type Option func(*Engine)

// WithListener sets the callback that receives every theme change. It is
// called with the engine lock released.
func WithListener(fn func(Theme)) Option {
	return func(e *Engine) {
		e.listener = fn
	}
}

func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// Engine is safe for concurrent use. It starts muted and uninitialized.
type Engine struct {
	mu          sync.Mutex
	initialized bool
	running     bool
	muted       bool
	current     *domain.SectorID
	closed      bool

	listener func(Theme)
	metrics  *observe.Metrics
}

func New(opts ...Option) *Engine {
	e := &Engine{muted: true}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Init prepares the output. Calling it again is a no-op.
func (e *Engine) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.initialized = true
	return nil
}

// Resume starts output after Init.
func (e *Engine) Resume(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if !e.initialized {
		return ErrNotInitialized
	}
	e.running = true
	return nil
}

// PlayTheme switches to sector's theme. Requesting the current theme again
// does nothing.
func (e *Engine) PlayTheme(sector domain.SectorID) {
	e.mu.Lock()
	if e.closed || (e.current != nil && *e.current == sector) {
		e.mu.Unlock()
		return
	}
	next := sector
	e.current = &next
	listener := e.listener
	e.mu.Unlock()

	t := Lookup(sector)
	e.metrics.RecordThemeChange(context.Background(), t.Name)
	if listener != nil {
		listener(t)
	}
}

func (e *Engine) ClearTheme() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = nil
}

// ToggleMute flips the mute state and reports whether output is now muted.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	return e.muted
}

func (e *Engine) State() domain.AudioThemeState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := domain.AudioThemeState{Muted: e.muted}
	if e.current != nil {
		current := *e.current
		state.CurrentTheme = &current
	}
	return state
}

// Audible reports whether output is running and unmuted.
func (e *Engine) Audible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.running && !e.muted
}

// Current returns the theme being played, if any.
func (e *Engine) Current() (Theme, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return Theme{}, false
	}
	return Lookup(*e.current), true
}

// Close stops output. Later PlayTheme calls are ignored.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.running = false
	e.current = nil
	return nil
}

// Package game implements the central state engine of the forge: economy,
// inventory, crafting, orders, expeditions, mine combat, timed effects and
// the staff roster. All operations are synchronous state transitions on a
// single aggregate guarded by one mutex; callers never observe a partially
// applied transaction.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/content"
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// Engine owns the aggregate game state. The presentation layer drives it
// through method calls and a once-per-second tick; it holds no timers of
// its own.
type Engine struct {
	mu      sync.Mutex
	state   *domain.GameState
	catalog *content.Catalog
	rng     *rand.Rand
	now     func() time.Time

	// revision increments on every mutation; read models use it as a
	// cache key
	revision uint64

	pendingCraft *pendingCraft
	pendingCards []domain.EventCard
}

// Option configures an Engine
type Option func(*Engine)

// WithSeed makes every randomized outcome reproducible
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
	}
}

// WithClock injects the time source used for orders, expeditions and
// respawn scheduling
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithState starts the engine from a previously loaded state instead of a
// fresh game
func WithState(state *domain.GameState) Option {
	return func(e *Engine) {
		e.state = state
	}
}

// New creates an engine over the given content catalog
func New(catalog *content.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // Game logic randomness, not security critical
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.state == nil {
		e.state = domain.NewGameState(catalog.Recipes)
	}
	if e.state.EventCooldown <= 0 {
		e.state.EventCooldown = domain.EventCooldownSeconds
	}
	return e
}

// Revision returns the mutation counter for cache invalidation
func (e *Engine) Revision() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.revision
}

// touch records a completed mutation
func (e *Engine) touch() {
	e.revision++
}

// rollFloat returns a random float64 in [0.0, 1.0)
func (e *Engine) rollFloat() float64 {
	return e.rng.Float64()
}

// rollInt returns a random integer between min and max (inclusive)
func (e *Engine) rollInt(min, max int) int {
	if min >= max {
		return min
	}
	return e.rng.Intn(max-min+1) + min
}

// ReplaceState swaps in a freshly loaded state, e.g. after a save import.
// Pending craft and event selections are discarded with the old state.
func (e *Engine) ReplaceState(state *domain.GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state
	e.pendingCraft = nil
	e.pendingCards = nil
	if e.state.EventCooldown <= 0 {
		e.state.EventCooldown = domain.EventCooldownSeconds
	}
	e.touch()
}

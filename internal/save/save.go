// Package save persists and restores game state. Saves travel inside a
// versioned envelope; loading an envelope from an older schema performs a
// soft-reset migration that carries the player's earned progress forward
// and rebuilds everything else from current content.
package save

import (
	"errors"
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

var (
	// ErrNoSave means the slot has never been written
	ErrNoSave = errors.New("no save found")
	// ErrVersionAhead means the save was written by a newer build
	ErrVersionAhead = errors.New("save version is newer than this build")
)

// Envelope wraps a persisted state with its schema version. The version is
// stored beside the state, not inside it, so migration can decide what to
// do before decoding assumptions change.
type Envelope struct {
	Version int               `json:"version"`
	SavedAt time.Time         `json:"saved_at"`
	State   *domain.GameState `json:"state"`
}

// NewEnvelope wraps a state snapshot for persistence
func NewEnvelope(state *domain.GameState, at time.Time) Envelope {
	return Envelope{
		Version: domain.SchemaVersion,
		SavedAt: at,
		State:   state,
	}
}

// Migrate resolves an envelope into a playable state. Current-version
// saves pass through untouched. Older saves soft-reset: gold (capped),
// reputation, level, the day counter and the inventory survive; orders,
// expeditions, effects, staff, upgrades and mine progress rebuild fresh
// against the current recipe set. Returns whether a migration happened.
func Migrate(env Envelope, recipes []domain.Recipe) (*domain.GameState, bool, error) {
	if env.State == nil {
		return nil, false, ErrNoSave
	}
	if env.Version > domain.SchemaVersion {
		return nil, false, ErrVersionAhead
	}
	if env.Version == domain.SchemaVersion {
		env.State.Version = domain.SchemaVersion
		return env.State, false, nil
	}

	old := env.State
	fresh := domain.NewGameState(recipes)

	fresh.Gold = old.Gold
	if fresh.Gold > domain.MigrationGoldCeiling {
		fresh.Gold = domain.MigrationGoldCeiling
	}
	fresh.Reputation = old.Reputation
	fresh.Level = old.Level
	if fresh.Level < 1 {
		fresh.Level = 1
	}
	fresh.Day = old.Day
	if fresh.Day < 1 {
		fresh.Day = 1
	}
	fresh.Inventory = append([]domain.Item{}, old.Inventory...)

	return fresh, true, nil
}

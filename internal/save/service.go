package save

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/game"
	"github.com/forgeline/LegendaryForge_Go/internal/logger"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// Service defines the interface for save operations
type Service interface {
	// Save snapshots the engine into the configured slot
	Save(ctx context.Context) error
	// Restore loads the slot into the engine, migrating if the save is
	// from an older schema. A missing save is not an error; the engine
	// keeps its fresh state.
	Restore(ctx context.Context) (restored, migrated bool, err error)
}

type service struct {
	repo    Repository
	engine  *game.Engine
	recipes []domain.Recipe
	slot    string

	// lastSaved skips redundant writes when nothing changed
	lastSaved uint64
	saved     bool
}

// NewService creates a new save service bound to one slot
func NewService(repo Repository, engine *game.Engine, recipes []domain.Recipe, slot string) Service {
	return &service{
		repo:    repo,
		engine:  engine,
		recipes: recipes,
		slot:    slot,
	}
}

func (s *service) Save(ctx context.Context) error {
	log := logger.FromContext(ctx)

	state, revision := s.engine.Snapshot()
	if s.saved && revision == s.lastSaved {
		log.Debug("Save skipped, state unchanged", "slot", s.slot, "revision", revision)
		return nil
	}

	env := NewEnvelope(state, time.Now())
	if err := s.repo.Put(ctx, s.slot, env); err != nil {
		metrics.SavesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to write save slot %s: %w", s.slot, err)
	}

	s.lastSaved = revision
	s.saved = true
	metrics.SavesTotal.WithLabelValues("ok").Inc()
	log.Info("Game saved", "slot", s.slot, "revision", revision)
	return nil
}

func (s *service) Restore(ctx context.Context) (bool, bool, error) {
	log := logger.FromContext(ctx)

	env, err := s.repo.Get(ctx, s.slot)
	if errors.Is(err, ErrNoSave) {
		log.Info("No existing save, starting fresh", "slot", s.slot)
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read save slot %s: %w", s.slot, err)
	}

	state, migrated, err := Migrate(env, s.recipes)
	if err != nil {
		return false, false, fmt.Errorf("failed to migrate save slot %s: %w", s.slot, err)
	}
	if migrated {
		log.Warn("Save migrated from older schema",
			"slot", s.slot, "from_version", env.Version, "to_version", domain.SchemaVersion)
	}

	s.engine.ReplaceState(state)
	log.Info("Game restored", "slot", s.slot, "day", state.Day)
	return true, migrated, nil
}

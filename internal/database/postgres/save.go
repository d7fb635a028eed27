// Package postgres implements the save repository over PostgreSQL. The
// whole game state lives in one JSONB row per slot; there is no value in
// normalizing an aggregate that is always read and written whole.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/save"
)

// SaveRepository implements save.Repository for PostgreSQL
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

const upsertSaveSQL = `
INSERT INTO save_slots (slot, version, state, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slot) DO UPDATE
SET version = EXCLUDED.version,
    state = EXCLUDED.state,
    updated_at = EXCLUDED.updated_at`

const getSaveSQL = `
SELECT version, state, updated_at FROM save_slots WHERE slot = $1`

// Put writes or replaces the slot's envelope
func (r *SaveRepository) Put(ctx context.Context, slot string, env save.Envelope) error {
	state, err := json.Marshal(env.State)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if _, err := r.db.Exec(ctx, upsertSaveSQL, slot, env.Version, state, env.SavedAt); err != nil {
		return fmt.Errorf("failed to upsert save slot: %w", err)
	}
	return nil
}

// Get loads the slot's envelope, or save.ErrNoSave
func (r *SaveRepository) Get(ctx context.Context, slot string) (save.Envelope, error) {
	var env save.Envelope
	var state []byte

	row := r.db.QueryRow(ctx, getSaveSQL, slot)
	if err := row.Scan(&env.Version, &state, &env.SavedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return save.Envelope{}, save.ErrNoSave
		}
		return save.Envelope{}, fmt.Errorf("failed to read save slot: %w", err)
	}

	env.State = &domain.GameState{}
	if err := json.Unmarshal(state, env.State); err != nil {
		return save.Envelope{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return env, nil
}

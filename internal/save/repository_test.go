package save

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	state := domain.NewGameState(testRecipes())
	state.Gold = 321
	savedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Put(ctx, "slot1", NewEnvelope(state, savedAt)))

	env, err := repo.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, env.Version)
	assert.True(t, env.SavedAt.Equal(savedAt))
	require.NotNil(t, env.State)
	assert.Equal(t, 321, env.State.Gold)
}

func TestMemoryRepository_MissingSlot(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Get(context.Background(), "empty")
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestMemoryRepository_DoesNotShareState(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	state := domain.NewGameState(testRecipes())
	state.Gold = 100
	require.NoError(t, repo.Put(ctx, "slot1", NewEnvelope(state, time.Now())))

	// Mutations after Put must not reach the stored copy
	state.Gold = 9999

	env, err := repo.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, 100, env.State.Gold)

	// Nor may two Gets hand out the same state
	env2, err := repo.Get(ctx, "slot1")
	require.NoError(t, err)
	env.State.Gold = 1
	assert.Equal(t, 100, env2.State.Gold)
}

func TestMemoryRepository_OverwritesSlot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := domain.NewGameState(testRecipes())
	first.Gold = 1
	second := domain.NewGameState(testRecipes())
	second.Gold = 2

	require.NoError(t, repo.Put(ctx, "slot1", NewEnvelope(first, time.Now())))
	require.NoError(t, repo.Put(ctx, "slot1", NewEnvelope(second, time.Now())))

	env, err := repo.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, 2, env.State.Gold)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func TestSpendGold_InsufficientFunds(t *testing.T) {
	engine := newTestEngine(t)

	err := engine.SpendGold(engine.Gold() + 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.StartingGold, engine.Gold())

	require.NoError(t, engine.SpendGold(domain.StartingGold))
	assert.Zero(t, engine.Gold())
}

func TestReputation_DrivesLevel(t *testing.T) {
	engine := newTestEngine(t)

	engine.AddReputation(250)
	rep, level := engine.Reputation()
	assert.Equal(t, 250, rep)
	assert.Equal(t, 3, level)

	engine.LoseReputation(200)
	rep, level = engine.Reputation()
	assert.Equal(t, 50, rep)
	assert.Equal(t, 1, level)
}

func TestLoseReputation_FloorsAtZero(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddReputation(5)

	engine.LoseReputation(100)

	rep, level := engine.Reputation()
	assert.Zero(t, rep)
	assert.Equal(t, 1, level)
}

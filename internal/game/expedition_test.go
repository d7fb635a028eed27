package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func TestDispatchExpedition_PaysCostUpFront(t *testing.T) {
	engine := newTestEngine(t)
	goldBefore := engine.Gold()

	exp, err := engine.DispatchExpedition("forest")
	require.NoError(t, err)

	assert.Equal(t, "forest", exp.MapType)
	assert.Equal(t, 120*time.Second, exp.Duration)
	assert.Equal(t, 30, exp.Cost)
	assert.Equal(t, goldBefore-30, engine.Gold())
	assert.Len(t, engine.Expeditions(), 1)
}

func TestDispatchExpedition_UnknownMap(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.DispatchExpedition("volcano")
	assert.Error(t, err)
	assert.Empty(t, engine.Expeditions())
}

func TestDispatchExpedition_InsufficientFunds(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SpendGold(engine.Gold()))

	_, err := engine.DispatchExpedition("forest")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Empty(t, engine.Expeditions())
}

func TestTickSecond_CompletesElapsedExpeditions(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	now, advance := fixedClock(start)
	engine := newTestEngine(t, WithClock(now))

	exp, err := engine.DispatchExpedition("forest")
	require.NoError(t, err)

	advance(exp.Duration - time.Second)
	report := engine.TickSecond()
	assert.Empty(t, report.ExpeditionResults)
	assert.Len(t, engine.Expeditions(), 1)

	advance(time.Second)
	report = engine.TickSecond()
	require.Len(t, report.ExpeditionResults, 1)
	assert.Empty(t, engine.Expeditions())

	result := report.ExpeditionResults[0]
	assert.Equal(t, exp.ID, result.Expedition.ID)
	assert.Empty(t, result.Overflow)

	total := 0
	for _, reward := range result.Rewards {
		assert.Contains(t, exp.PossibleDrops, reward.Type)
		total += reward.Quantity
	}
	assert.GreaterOrEqual(t, total, domain.ExpeditionRollsMin*domain.ExpeditionPickQuantityMin)
	assert.LessOrEqual(t, total, domain.ExpeditionRollsMax*domain.ExpeditionPickQuantityMax)
	assert.NotEmpty(t, engine.Inventory(), "rewards land in the inventory")
}

func TestTickSecond_ExpeditionOverflowOnFullInventory(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	now, advance := fixedClock(start)

	state := domain.NewGameState(testCatalog().Recipes)
	state.InventoryCapacity = 0
	engine := New(testCatalog(), WithSeed(42), WithState(state), WithClock(now))

	exp, err := engine.DispatchExpedition("forest")
	require.NoError(t, err)

	advance(exp.Duration)
	report := engine.TickSecond()
	require.Len(t, report.ExpeditionResults, 1)

	result := report.ExpeditionResults[0]
	assert.Empty(t, result.Rewards)
	assert.NotEmpty(t, result.Overflow, "materials that do not fit are reported, not lost silently")
	assert.Empty(t, engine.Inventory())
}

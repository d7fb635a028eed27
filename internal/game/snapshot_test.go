package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func TestSnapshot_MatchesRevision(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddGold(25)

	snap, revision := engine.Snapshot()
	assert.Equal(t, engine.Revision(), revision)
	assert.Equal(t, engine.Gold(), snap.Gold)
}

func TestSnapshot_IsolatedFromLaterMutations(t *testing.T) {
	engine := newTestEngine(t)
	addMaterials(t, engine, domain.MaterialIron, 3)
	sword := testWeapon("Iron Sword", 10, 30)
	require.NoError(t, engine.AddItem(sword))
	require.NoError(t, engine.EquipItem(sword.ID))

	snap, _ := engine.Snapshot()
	require.Len(t, snap.Inventory, 1)
	require.NotNil(t, snap.Equipped.Weapon)

	// Mutate the engine after the fact
	engine.AddGold(500)
	addMaterials(t, engine, domain.MaterialIron, 7)
	require.NoError(t, engine.UnequipSlot(domain.EquipWeapon))

	assert.Equal(t, domain.StartingGold, snap.Gold)
	assert.Equal(t, 3, snap.Inventory[0].Quantity)
	assert.NotNil(t, snap.Equipped.Weapon)
}

func TestSnapshot_EffectCountersNotShared(t *testing.T) {
	remaining := 30
	usage := 2
	state := domain.NewGameState(testCatalog().Recipes)
	state.ActiveEffects = []domain.ActiveEffect{
		{Type: domain.EffectOrderReward, Value: 0.5, RemainingTime: &remaining},
		{Type: domain.EffectMaterialSave, Value: 0.5, RemainingUsage: &usage},
	}
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	snap, _ := engine.Snapshot()

	engine.TickSecond()
	engine.ConsumeEffect(domain.EffectMaterialSave)

	require.NotNil(t, snap.ActiveEffects[0].RemainingTime)
	assert.Equal(t, 30, *snap.ActiveEffects[0].RemainingTime)
	require.NotNil(t, snap.ActiveEffects[1].RemainingUsage)
	assert.Equal(t, 2, *snap.ActiveEffects[1].RemainingUsage)
}

func TestSnapshot_MonsterCopied(t *testing.T) {
	state := stateWithMonster(domain.Monster{Name: "Cave Rat", HP: 12, MaxHP: 12, Attack: 3})
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	snap, _ := engine.Snapshot()
	require.NotNil(t, snap.Mine.CurrentMonster)

	_, err := engine.PerformBattle()
	require.NoError(t, err)

	assert.Equal(t, 12, snap.Mine.CurrentMonster.HP, "a battle must not reach into an old snapshot")
}

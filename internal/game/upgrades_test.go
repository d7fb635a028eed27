package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func TestPurchaseUpgrade_InventoryCapacity(t *testing.T) {
	engine := newTestEngine(t)
	goldBefore := engine.Gold()

	require.NoError(t, engine.PurchaseUpgrade("bigger_bags"))
	assert.Equal(t, goldBefore-50, engine.Gold())

	// Capacity grew from 20 to 30: 25 distinct equipment rows must fit
	for i := 0; i < 25; i++ {
		require.NoError(t, engine.AddItem(testWeapon("Filler", 1, 1)))
	}
}

func TestPurchaseUpgrade_AlreadyOwned(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddGold(1000)
	require.NoError(t, engine.PurchaseUpgrade("bigger_bags"))

	assert.ErrorIs(t, engine.PurchaseUpgrade("bigger_bags"), domain.ErrUpgradeOwned)
}

func TestPurchaseUpgrade_LevelGate(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddGold(1000)

	assert.ErrorIs(t, engine.PurchaseUpgrade("guild_charter"), domain.ErrUpgradeLocked)

	// Level 3 needs 200 reputation
	engine.AddReputation(200)
	require.NoError(t, engine.PurchaseUpgrade("guild_charter"))
}

func TestPurchaseUpgrade_InsufficientFunds(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.SpendGold(engine.Gold()))

	assert.ErrorIs(t, engine.PurchaseUpgrade("bigger_bags"), domain.ErrInsufficientFunds)
}

func TestPurchaseUpgrade_Unknown(t *testing.T) {
	engine := newTestEngine(t)
	assert.ErrorIs(t, engine.PurchaseUpgrade("golden_anvil"), domain.ErrUpgradeNotFound)
}

func TestPurchaseUpgrade_MaxOrders(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.PurchaseUpgrade("busy_board"))

	// 3 base + 2 from the upgrade
	for i := 0; i < 5; i++ {
		_, err := engine.GenerateOrder()
		require.NoError(t, err)
	}
	_, err := engine.GenerateOrder()
	assert.ErrorIs(t, err, domain.ErrOrdersFull)
}

func TestPurchaseUpgrade_UnlockRecipe(t *testing.T) {
	engine := newTestEngine(t)
	engine.AddGold(1000)
	require.NoError(t, engine.PurchaseUpgrade("crystal_smithing"))

	addMaterials(t, engine, domain.MaterialCrystal, 2)
	assert.NoError(t, engine.StartCraft("crystal_blade"))
}

func TestUpgrades_ViewFlags(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.PurchaseUpgrade("bigger_bags"))

	for _, view := range engine.Upgrades() {
		switch view.ID {
		case "bigger_bags":
			assert.True(t, view.Purchased)
			assert.True(t, view.Available)
		case "guild_charter":
			assert.False(t, view.Purchased)
			assert.False(t, view.Available, "level 3 gate holds at level 1")
		default:
			assert.False(t, view.Purchased)
			assert.True(t, view.Available)
		}
	}
}

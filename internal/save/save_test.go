package save

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:     "iron_sword",
			Name:   "Iron Sword",
			Result: domain.EquipWeapon,
			Materials: []domain.MaterialCost{
				{Type: domain.MaterialIron, Quantity: 3},
			},
			BaseAttack:     10,
			BaseDurability: 30,
			SellPrice:      40,
			Unlocked:       true,
		},
	}
}

func TestMigrate_CurrentVersionPassesThrough(t *testing.T) {
	state := domain.NewGameState(testRecipes())
	state.Gold = 777
	env := NewEnvelope(state, time.Now())

	out, migrated, err := Migrate(env, testRecipes())
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Same(t, state, out)
	assert.Equal(t, 777, out.Gold)
}

func TestMigrate_NilState(t *testing.T) {
	_, _, err := Migrate(Envelope{Version: domain.SchemaVersion}, testRecipes())
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestMigrate_NewerVersionRejected(t *testing.T) {
	env := Envelope{
		Version: domain.SchemaVersion + 1,
		State:   domain.NewGameState(testRecipes()),
	}

	_, _, err := Migrate(env, testRecipes())
	assert.ErrorIs(t, err, ErrVersionAhead)
}

func TestMigrate_OlderVersionSoftResets(t *testing.T) {
	old := domain.NewGameState(nil)
	old.Gold = 50000
	old.Reputation = 250
	old.Level = 3
	old.Day = 12
	old.Inventory = []domain.Item{
		domain.NewMaterial(domain.MaterialIron, "Iron", 7, 5),
	}
	old.Orders = []domain.Order{{Reward: 100}}
	old.HiredNPCs = []domain.HiredNPC{{Name: "Aldric"}}
	old.ActiveEffects = []domain.ActiveEffect{{Type: domain.EffectOrderReward, Value: 0.5}}
	old.Mine.UnlockedLevels = []int{1, 2, 3}
	old.PurchasedUpgrades = []string{"bigger_bags"}

	env := Envelope{Version: domain.SchemaVersion - 1, State: old}
	fresh, migrated, err := Migrate(env, testRecipes())
	require.NoError(t, err)
	require.True(t, migrated)

	// Earned progress carries forward, gold under the ceiling
	assert.Equal(t, domain.MigrationGoldCeiling, fresh.Gold)
	assert.Equal(t, 250, fresh.Reputation)
	assert.Equal(t, 3, fresh.Level)
	assert.Equal(t, 12, fresh.Day)
	require.Len(t, fresh.Inventory, 1)
	assert.Equal(t, 7, fresh.Inventory[0].Quantity)

	// Everything else rebuilds from current content
	assert.Equal(t, domain.SchemaVersion, fresh.Version)
	assert.Empty(t, fresh.Orders)
	assert.Empty(t, fresh.HiredNPCs)
	assert.Empty(t, fresh.ActiveEffects)
	assert.Empty(t, fresh.PurchasedUpgrades)
	assert.Equal(t, []int{1}, fresh.Mine.UnlockedLevels)
	require.Len(t, fresh.Recipes, 1)
	assert.Equal(t, "iron_sword", fresh.Recipes[0].ID)
}

func TestMigrate_ClampsCorruptCounters(t *testing.T) {
	old := domain.NewGameState(nil)
	old.Level = 0
	old.Day = -4

	env := Envelope{Version: 1, State: old}
	fresh, migrated, err := Migrate(env, testRecipes())
	require.NoError(t, err)
	require.True(t, migrated)
	assert.Equal(t, 1, fresh.Level)
	assert.Equal(t, 1, fresh.Day)
}

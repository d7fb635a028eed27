package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

func testWeapon(name string, attack, durability int) domain.Item {
	return domain.Item{
		ID:            uuid.New(),
		Name:          name,
		Category:      domain.CategoryEquipment,
		Quality:       domain.QualityCommon,
		SellPrice:     10,
		Kind:          domain.EquipWeapon,
		Attack:        attack,
		Durability:    durability,
		MaxDurability: durability,
	}
}

func testArmor(name string, defense, durability int) domain.Item {
	return domain.Item{
		ID:            uuid.New(),
		Name:          name,
		Category:      domain.CategoryEquipment,
		Quality:       domain.QualityCommon,
		SellPrice:     10,
		Kind:          domain.EquipArmor,
		Defense:       defense,
		Durability:    durability,
		MaxDurability: durability,
	}
}

func TestEquipItem_MovesIntoSlot(t *testing.T) {
	engine := newTestEngine(t)
	sword := testWeapon("Iron Sword", 10, 30)
	require.NoError(t, engine.AddItem(sword))

	require.NoError(t, engine.EquipItem(sword.ID))

	equipped := engine.Equipped()
	require.NotNil(t, equipped.Weapon)
	assert.Equal(t, sword.ID, equipped.Weapon.ID)
	assert.Empty(t, engine.Inventory())

	attack, _ := engine.PlayerPower()
	assert.Equal(t, domain.UnarmedAttack+10, attack)
}

func TestEquipItem_SwapWorksWithFullInventory(t *testing.T) {
	worn := testWeapon("Worn Sword", 4, 10)
	replacement := testWeapon("Iron Sword", 10, 30)

	state := domain.NewGameState(testCatalog().Recipes)
	state.InventoryCapacity = 1
	state.Inventory = []domain.Item{replacement}
	state.Equipped.Weapon = &worn
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	require.NoError(t, engine.EquipItem(replacement.ID))

	equipped := engine.Equipped()
	require.NotNil(t, equipped.Weapon)
	assert.Equal(t, replacement.ID, equipped.Weapon.ID)

	inv := engine.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, worn.ID, inv[0].ID, "the displaced piece returns to the inventory")
}

func TestEquipItem_RejectsNonEquipment(t *testing.T) {
	engine := newTestEngine(t)
	addMaterials(t, engine, domain.MaterialIron, 1)
	stack := engine.Inventory()[0]

	assert.ErrorIs(t, engine.EquipItem(stack.ID), domain.ErrNotEquipment)
}

func TestEquipItem_UnknownID(t *testing.T) {
	engine := newTestEngine(t)
	assert.ErrorIs(t, engine.EquipItem(uuid.New()), domain.ErrItemNotFound)
}

func TestUnequipSlot_ReturnsPieceToInventory(t *testing.T) {
	sword := testWeapon("Iron Sword", 10, 30)
	state := domain.NewGameState(testCatalog().Recipes)
	state.Equipped.Weapon = &sword
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	require.NoError(t, engine.UnequipSlot(domain.EquipWeapon))

	assert.Nil(t, engine.Equipped().Weapon)
	inv := engine.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, sword.ID, inv[0].ID)
}

func TestUnequipSlot_EmptySlot(t *testing.T) {
	engine := newTestEngine(t)
	assert.ErrorIs(t, engine.UnequipSlot(domain.EquipArmor), domain.ErrSlotEmpty)
}

func TestUnequipSlot_FullInventoryKeepsPieceEquipped(t *testing.T) {
	sword := testWeapon("Iron Sword", 10, 30)
	state := domain.NewGameState(testCatalog().Recipes)
	state.InventoryCapacity = 1
	state.Inventory = []domain.Item{testArmor("Iron Mail", 8, 25)}
	state.Equipped.Weapon = &sword
	engine := New(testCatalog(), WithSeed(42), WithState(state))

	err := engine.UnequipSlot(domain.EquipWeapon)
	assert.ErrorIs(t, err, domain.ErrInventoryFull)
	assert.NotNil(t, engine.Equipped().Weapon)
}

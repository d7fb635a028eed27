package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/LegendaryForge_Go/internal/content"
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// testCatalog builds a small content set covering every subsystem. Tests
// that need specific content add to state directly instead of growing this.
func testCatalog() *content.Catalog {
	return &content.Catalog{
		Materials: []content.MaterialDef{
			{Type: domain.MaterialIron, Name: "Iron", SellPrice: 5},
			{Type: domain.MaterialWood, Name: "Wood", SellPrice: 2},
			{Type: domain.MaterialLeather, Name: "Leather", SellPrice: 4},
			{Type: domain.MaterialCoal, Name: "Coal", SellPrice: 3},
		},
		Recipes: []domain.Recipe{
			{
				ID:     "iron_sword",
				Name:   "Iron Sword",
				Result: domain.EquipWeapon,
				Materials: []domain.MaterialCost{
					{Type: domain.MaterialIron, Quantity: 3},
					{Type: domain.MaterialWood, Quantity: 1},
				},
				BaseAttack:     10,
				BaseDurability: 30,
				SellPrice:      40,
				Unlocked:       true,
			},
			{
				ID:     "leather_armor",
				Name:   "Leather Armor",
				Result: domain.EquipArmor,
				Materials: []domain.MaterialCost{
					{Type: domain.MaterialLeather, Quantity: 4},
				},
				BaseDefense:    8,
				BaseDurability: 25,
				SellPrice:      35,
				Unlocked:       true,
			},
			{
				ID:     "crystal_blade",
				Name:   "Crystal Blade",
				Result: domain.EquipWeapon,
				Materials: []domain.MaterialCost{
					{Type: domain.MaterialCrystal, Quantity: 2},
				},
				BaseAttack:     25,
				BaseDurability: 40,
				SellPrice:      200,
				Unlocked:       false,
			},
		},
		MineLevels: []content.MineLevel{
			{
				Level: 1,
				Monsters: []content.MonsterTemplate{
					{Name: "Cave Rat", Level: 1, AttackMin: 3, AttackMax: 5, DefenseMin: 1, DefenseMax: 2, HPMin: 10, HPMax: 15, GoldMin: 5, GoldMax: 10},
				},
				Drops: []content.DropEntry{
					{Type: domain.MaterialIron, Chance: 0.8, QuantityMin: 1, QuantityMax: 3},
					{Type: domain.MaterialCoal, Chance: 0.5, QuantityMin: 1, QuantityMax: 2},
				},
			},
			{
				Level: 2,
				Monsters: []content.MonsterTemplate{
					{Name: "Goblin", Level: 2, AttackMin: 6, AttackMax: 9, DefenseMin: 2, DefenseMax: 4, HPMin: 20, HPMax: 28, GoldMin: 12, GoldMax: 20},
				},
				Drops: []content.DropEntry{
					{Type: domain.MaterialIron, Chance: 0.8, QuantityMin: 1, QuantityMax: 3},
				},
			},
		},
		Expeditions: []content.ExpeditionMap{
			{
				MapType:         "forest",
				Name:            "Whispering Forest",
				DurationSeconds: 120,
				Cost:            30,
				Drops:           []domain.MaterialType{domain.MaterialWood, domain.MaterialLeather},
			},
		},
		Cards: []domain.EventCard{
			{ID: "gold_pouch", Name: "Gold Pouch", Rarity: domain.CardCommon, EffectType: domain.EffectGoldBonus, EffectValue: 50},
			{ID: "spare_hands", Name: "Spare Hands", Rarity: domain.CardCommon, EffectType: domain.EffectMaterialSave, EffectValue: 0.5, Usage: 1},
			{ID: "twin_hammers", Name: "Twin Hammers", Rarity: domain.CardRare, EffectType: domain.EffectDoubleForge, EffectValue: 2, Usage: 1},
			{ID: "masters_touch", Name: "Master's Touch", Rarity: domain.CardRare, EffectType: domain.EffectQualityBoost, EffectValue: 15, Usage: 1},
			{ID: "generous_patron", Name: "Generous Patron", Rarity: domain.CardEpic, EffectType: domain.EffectOrderReward, EffectValue: 0.5, Duration: 120},
		},
		NPCPools: []content.NPCPool{
			{
				Quality:       domain.QualityCommon,
				HireCost:      100,
				SalaryMin:     5,
				SalaryMax:     10,
				BonusValueMin: 5,
				BonusValueMax: 10,
				Professions:   []domain.NPCProfession{domain.ProfessionApprentice},
				Bonuses:       []domain.NPCBonus{domain.BonusMaterial},
				Names:         []string{"aldric"},
			},
		},
		Upgrades: []content.Upgrade{
			{ID: "bigger_bags", Name: "Bigger Bags", Cost: 50, RequiresLevel: 1, Effect: content.UpgradeInventoryCapacity, Value: 10},
			{ID: "busy_board", Name: "Busy Board", Cost: 80, RequiresLevel: 1, Effect: content.UpgradeMaxOrders, Value: 2},
			{ID: "crystal_smithing", Name: "Crystal Smithing", Cost: 150, RequiresLevel: 1, Effect: content.UpgradeUnlockRecipe, RecipeID: "crystal_blade"},
			{ID: "guild_charter", Name: "Guild Charter", Cost: 500, RequiresLevel: 3, Effect: content.UpgradeMaxNPCs, Value: 1},
		},
		Requesters: []string{"village_elder", "traveling_knight"},
	}
}

// newTestEngine returns a seeded engine over the shared fixture catalog
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	return New(testCatalog(), opts...)
}

// fixedClock returns a controllable clock starting at a fixed instant
func fixedClock(start time.Time) (func() time.Time, func(d time.Duration)) {
	current := start
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func TestNew_FreshState(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, domain.StartingGold, engine.Gold())
	rep, level := engine.Reputation()
	assert.Equal(t, 0, rep)
	assert.Equal(t, 1, level)
	assert.Equal(t, 1, engine.Day())
	assert.Empty(t, engine.Inventory())

	mine := engine.MineState()
	assert.Equal(t, 1, mine.CurrentLevel)
	assert.Equal(t, []int{1}, mine.UnlockedLevels)
	assert.Equal(t, domain.StartingPlayerHP, mine.PlayerHP)
}

func TestNew_CopiesRecipesFromCatalog(t *testing.T) {
	catalog := testCatalog()
	engine := New(catalog, WithSeed(1))

	recipes := engine.Recipes()
	require.Len(t, recipes, len(catalog.Recipes))

	// Runtime unlock flips must not leak into the catalog
	engine.AddGold(1000)
	require.NoError(t, engine.PurchaseUpgrade("crystal_smithing"))

	for _, r := range engine.Recipes() {
		if r.ID == "crystal_blade" {
			assert.True(t, r.Unlocked)
		}
	}
	for _, r := range catalog.Recipes {
		if r.ID == "crystal_blade" {
			assert.False(t, r.Unlocked, "catalog must stay immutable")
		}
	}
}

func TestRevision_IncrementsOnMutation(t *testing.T) {
	engine := newTestEngine(t)

	before := engine.Revision()
	engine.AddGold(10)
	assert.Greater(t, engine.Revision(), before)
}

func TestReplaceState_DiscardsPending(t *testing.T) {
	engine := newTestEngine(t)
	addMaterials(t, engine, domain.MaterialIron, 3)
	addMaterials(t, engine, domain.MaterialWood, 1)
	require.NoError(t, engine.StartCraft("iron_sword"))

	fresh := domain.NewGameState(testCatalog().Recipes)
	engine.ReplaceState(fresh)

	_, pending := engine.PendingRecipe()
	assert.False(t, pending)
	assert.Equal(t, domain.StartingGold, engine.Gold())
}

// addMaterials pushes a material stack into the engine through AddItem
func addMaterials(t *testing.T, engine *Engine, mat domain.MaterialType, qty int) {
	t.Helper()
	require.NoError(t, engine.AddItem(domain.NewMaterial(mat, string(mat), qty, 1)))
}

package domain

// SchemaVersion is the current persisted-state schema. Bumping it triggers
// the soft-reset migration in the save layer.
const SchemaVersion = 3

// Starting values and policy caps for a fresh game
const (
	StartingGold              = 100
	StartingInventoryCapacity = 20
	StartingMaxOrders         = 3
	StartingMaxHiredNPCs      = 2
	StartingPlayerHP          = 100
	MigrationGoldCeiling      = 10000
	ReputationPerLevel        = 100
)

// GameState is the aggregate root: the single snapshot that the engine
// mutates and the save layer persists.
type GameState struct {
	Version int `json:"version"`

	Gold       int `json:"gold"`
	Reputation int `json:"reputation"`
	Level      int `json:"level"`
	Day        int `json:"day"`

	ForgeSpeed        float64 `json:"forge_speed"`
	QualityBonus      float64 `json:"quality_bonus"`
	InventoryCapacity int     `json:"inventory_capacity"`
	MaxOrders         int     `json:"max_orders"`
	MaxHiredNPCs      int     `json:"max_hired_npcs"`

	Inventory []Item          `json:"inventory"`
	Equipped  PlayerEquipment `json:"equipped"`

	Recipes            []Recipe `json:"recipes"`
	PurchasedUpgrades  []string `json:"purchased_upgrades,omitempty"`

	Orders      []Order      `json:"orders,omitempty"`
	Expeditions []Expedition `json:"expeditions,omitempty"`

	ActiveEffects []ActiveEffect `json:"active_effects,omitempty"`
	EventCooldown int            `json:"event_cooldown"`

	HiredNPCs []HiredNPC `json:"hired_npcs,omitempty"`

	Mine MineState `json:"mine"`
}

// NewGameState builds a fresh default state. The recipe list is copied so
// runtime unlock flips never touch the static catalog.
func NewGameState(recipes []Recipe) *GameState {
	rs := make([]Recipe, len(recipes))
	copy(rs, recipes)

	return &GameState{
		Version:           SchemaVersion,
		Gold:              StartingGold,
		Reputation:        0,
		Level:             1,
		Day:               1,
		ForgeSpeed:        1.0,
		QualityBonus:      0,
		InventoryCapacity: StartingInventoryCapacity,
		MaxOrders:         StartingMaxOrders,
		MaxHiredNPCs:      StartingMaxHiredNPCs,
		Inventory:         []Item{},
		Recipes:           rs,
		Mine: MineState{
			CurrentLevel:   1,
			UnlockedLevels: []int{1},
			Phase:          PhaseIdle,
			PlayerHP:       StartingPlayerHP,
			MaxPlayerHP:    StartingPlayerHP,
		},
	}
}

// HasUpgrade reports whether the named upgrade has been purchased
func (s *GameState) HasUpgrade(id string) bool {
	for _, u := range s.PurchasedUpgrades {
		if u == id {
			return true
		}
	}
	return false
}

package domain

// MaterialCost is a single material requirement of a recipe
type MaterialCost struct {
	Type     MaterialType `json:"type"`
	Quantity int          `json:"quantity"`
}

// Recipe defines what a forging session produces. Recipes are static content
// except for the Unlocked flag, which upgrades flip at runtime.
type Recipe struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Result         EquipmentKind  `json:"result"`
	Materials      []MaterialCost `json:"materials"`
	BaseAttack     int            `json:"base_attack"`
	BaseDefense    int            `json:"base_defense"`
	BaseDurability int            `json:"base_durability"`
	SellPrice      int            `json:"sell_price"`
	Unlocked       bool           `json:"unlocked"`
}

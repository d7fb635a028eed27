package content

import "github.com/forgeline/LegendaryForge_Go/internal/domain"

// MaterialDef names a material type and prices its stacks
type MaterialDef struct {
	Type      domain.MaterialType `json:"type" validate:"required"`
	Name      string              `json:"name" validate:"required"`
	Icon      string              `json:"icon,omitempty"`
	SellPrice int                 `json:"sell_price" validate:"gte=0"`
}

// MonsterTemplate defines the stat ranges a mine level spawns from
type MonsterTemplate struct {
	Name       string `json:"name" validate:"required"`
	Level      int    `json:"level" validate:"gte=1"`
	AttackMin  int    `json:"attack_min" validate:"gte=0"`
	AttackMax  int    `json:"attack_max" validate:"gtefield=AttackMin"`
	DefenseMin int    `json:"defense_min" validate:"gte=0"`
	DefenseMax int    `json:"defense_max" validate:"gtefield=DefenseMin"`
	HPMin      int    `json:"hp_min" validate:"gte=1"`
	HPMax      int    `json:"hp_max" validate:"gtefield=HPMin"`
	GoldMin    int    `json:"gold_min" validate:"gte=0"`
	GoldMax    int    `json:"gold_max" validate:"gtefield=GoldMin"`
}

// DropEntry is one possible material drop from mining a level. Each entry
// fires independently with its own chance.
type DropEntry struct {
	Type        domain.MaterialType `json:"type" validate:"required"`
	Chance      float64             `json:"chance" validate:"gt=0,lte=1"`
	QuantityMin int                 `json:"quantity_min" validate:"gte=1"`
	QuantityMax int                 `json:"quantity_max" validate:"gtefield=QuantityMin"`
}

// MineLevel couples a level's monster pool with its drop table
type MineLevel struct {
	Level    int               `json:"level" validate:"gte=1"`
	Monsters []MonsterTemplate `json:"monsters" validate:"min=1,dive"`
	Drops    []DropEntry       `json:"drops" validate:"min=1,dive"`
}

// ExpeditionMap defines a dispatchable expedition destination
type ExpeditionMap struct {
	MapType         string                `json:"map_type" validate:"required"`
	Name            string                `json:"name" validate:"required"`
	DurationSeconds int                   `json:"duration_seconds" validate:"gte=1"`
	Cost            int                   `json:"cost" validate:"gte=0"`
	Drops           []domain.MaterialType `json:"drops" validate:"min=1"`
}

// NPCPool defines what a hire of a given quality tier can roll
type NPCPool struct {
	Quality       domain.Quality         `json:"quality" validate:"required"`
	HireCost      int                    `json:"hire_cost" validate:"gte=0"`
	SalaryMin     int                    `json:"salary_min" validate:"gte=0"`
	SalaryMax     int                    `json:"salary_max" validate:"gtefield=SalaryMin"`
	BonusValueMin float64                `json:"bonus_value_min" validate:"gte=0"`
	BonusValueMax float64                `json:"bonus_value_max" validate:"gtefield=BonusValueMin"`
	Professions   []domain.NPCProfession `json:"professions" validate:"min=1"`
	Bonuses       []domain.NPCBonus      `json:"bonuses" validate:"min=1"`
	Names         []string               `json:"names" validate:"min=1"`
}

// UpgradeEffect is what a shop upgrade changes when purchased
type UpgradeEffect string

const (
	UpgradeForgeSpeed        UpgradeEffect = "forgeSpeed"
	UpgradeQualityBonus      UpgradeEffect = "qualityBonus"
	UpgradeInventoryCapacity UpgradeEffect = "inventoryCapacity"
	UpgradeMaxOrders         UpgradeEffect = "maxOrders"
	UpgradeMaxNPCs           UpgradeEffect = "maxNPCs"
	UpgradeUnlockRecipe      UpgradeEffect = "unlockRecipe"
)

// Upgrade is a one-time purchasable shop improvement
type Upgrade struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Description   string        `json:"description,omitempty"`
	Cost          int           `json:"cost" validate:"gte=0"`
	RequiresLevel int           `json:"requires_level" validate:"gte=1"`
	Effect        UpgradeEffect `json:"effect" validate:"required"`
	Value         float64       `json:"value,omitempty"`
	RecipeID      string        `json:"recipe_id,omitempty"`
}

// Catalog is the full static content set the engine plays against
type Catalog struct {
	Version     string             `json:"version"`
	Materials   []MaterialDef      `json:"materials" validate:"min=1,dive"`
	Recipes     []domain.Recipe    `json:"recipes" validate:"min=1"`
	MineLevels  []MineLevel        `json:"mine_levels" validate:"min=1,dive"`
	Expeditions []ExpeditionMap    `json:"expeditions" validate:"min=1,dive"`
	Cards       []domain.EventCard `json:"cards" validate:"min=1"`
	NPCPools    []NPCPool          `json:"npc_pools" validate:"min=1,dive"`
	Upgrades    []Upgrade          `json:"upgrades" validate:"dive"`
	Requesters  []string           `json:"requesters" validate:"min=1"`
}

package content

import "github.com/forgeline/LegendaryForge_Go/internal/domain"

// MaterialDef returns the definition for a material type, if known
func (c *Catalog) MaterialDef(t domain.MaterialType) (MaterialDef, bool) {
	for _, m := range c.Materials {
		if m.Type == t {
			return m, true
		}
	}
	return MaterialDef{}, false
}

// NewMaterialItem builds an inventory stack for a material type using the
// catalog's name and price. Unknown types get a bare stack named after the
// type so content gaps never lose loot.
func (c *Catalog) NewMaterialItem(t domain.MaterialType, quantity int) domain.Item {
	if def, ok := c.MaterialDef(t); ok {
		item := domain.NewMaterial(t, def.Name, quantity, def.SellPrice)
		item.Icon = def.Icon
		return item
	}
	return domain.NewMaterial(t, string(t), quantity, 0)
}

// RecipeByID looks up a static recipe definition
func (c *Catalog) RecipeByID(id string) (domain.Recipe, bool) {
	for _, r := range c.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

// MineLevel returns the monster pool and drop table for a level
func (c *Catalog) MineLevel(level int) (MineLevel, bool) {
	for _, ml := range c.MineLevels {
		if ml.Level == level {
			return ml, true
		}
	}
	return MineLevel{}, false
}

// ExpeditionMap looks up a dispatchable destination by map type
func (c *Catalog) ExpeditionMap(mapType string) (ExpeditionMap, bool) {
	for _, e := range c.Expeditions {
		if e.MapType == mapType {
			return e, true
		}
	}
	return ExpeditionMap{}, false
}

// CardsByRarity filters the card set for one rarity tier
func (c *Catalog) CardsByRarity(r domain.CardRarity) []domain.EventCard {
	var out []domain.EventCard
	for _, card := range c.Cards {
		if card.Rarity == r {
			out = append(out, card)
		}
	}
	return out
}

// CardByID looks up a card definition
func (c *Catalog) CardByID(id string) (domain.EventCard, bool) {
	for _, card := range c.Cards {
		if card.ID == id {
			return card, true
		}
	}
	return domain.EventCard{}, false
}

// NPCPool returns the hire pool for a quality tier
func (c *Catalog) NPCPool(q domain.Quality) (NPCPool, bool) {
	for _, p := range c.NPCPools {
		if p.Quality == q {
			return p, true
		}
	}
	return NPCPool{}, false
}

// UpgradeByID looks up a shop upgrade
func (c *Catalog) UpgradeByID(id string) (Upgrade, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

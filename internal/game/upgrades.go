package game

import (
	"github.com/forgeline/LegendaryForge_Go/internal/content"
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// UpgradeView is a catalog upgrade with its purchased and availability
// flags resolved for the current player
type UpgradeView struct {
	content.Upgrade
	Purchased bool `json:"purchased"`
	Available bool `json:"available"`
}

// Upgrades returns the shop as the player currently sees it
func (e *Engine) Upgrades() []UpgradeView {
	e.mu.Lock()
	defer e.mu.Unlock()

	views := make([]UpgradeView, 0, len(e.catalog.Upgrades))
	for _, u := range e.catalog.Upgrades {
		views = append(views, UpgradeView{
			Upgrade:   u,
			Purchased: e.state.HasUpgrade(u.ID),
			Available: e.state.Level >= u.RequiresLevel,
		})
	}
	return views
}

// PurchaseUpgrade buys a one-time shop upgrade and applies its effect.
// Purchases are permanent and survive day advancement.
func (e *Engine) PurchaseUpgrade(upgradeID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	upgrade, ok := e.catalog.UpgradeByID(upgradeID)
	if !ok {
		return domain.ErrUpgradeNotFound
	}
	if e.state.HasUpgrade(upgradeID) {
		return domain.ErrUpgradeOwned
	}
	if e.state.Level < upgrade.RequiresLevel {
		return domain.ErrUpgradeLocked
	}
	if err := e.spendGoldLocked(upgrade.Cost); err != nil {
		return err
	}

	switch upgrade.Effect {
	case content.UpgradeForgeSpeed:
		e.state.ForgeSpeed += upgrade.Value
	case content.UpgradeQualityBonus:
		e.state.QualityBonus += upgrade.Value
	case content.UpgradeInventoryCapacity:
		e.state.InventoryCapacity += int(upgrade.Value)
	case content.UpgradeMaxOrders:
		e.state.MaxOrders += int(upgrade.Value)
	case content.UpgradeMaxNPCs:
		e.state.MaxHiredNPCs += int(upgrade.Value)
	case content.UpgradeUnlockRecipe:
		e.unlockRecipeLocked(upgrade.RecipeID)
	}

	e.state.PurchasedUpgrades = append(e.state.PurchasedUpgrades, upgradeID)
	metrics.UpgradesPurchased.WithLabelValues(string(upgrade.Effect)).Inc()
	e.touch()
	return nil
}

func (e *Engine) unlockRecipeLocked(recipeID string) {
	for i := range e.state.Recipes {
		if e.state.Recipes[i].ID == recipeID {
			e.state.Recipes[i].Unlocked = true
			return
		}
	}
}

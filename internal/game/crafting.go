package game

import (
	"math"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// pendingCraft reserves a recipe between material consumption and the
// forging minigame's result
type pendingCraft struct {
	recipe domain.Recipe
}

// CraftResult is what a finished forging session produced
type CraftResult struct {
	Recipe   string        `json:"recipe"`
	Score    float64       `json:"score"`
	Quality  domain.Quality `json:"quality"`
	Items    []domain.Item `json:"items"`
	Overflow int           `json:"overflow,omitempty"`
}

// PendingRecipe returns the recipe reserved by StartCraft, if any
func (e *Engine) PendingRecipe() (domain.Recipe, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendingCraft == nil {
		return domain.Recipe{}, false
	}
	return e.pendingCraft.recipe, true
}

// Recipes returns a copy of the player's recipe list with unlock flags
func (e *Engine) Recipes() []domain.Recipe {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Recipe(nil), e.state.Recipes...)
}

// StartCraft reserves the recipe's materials ahead of the forging minigame.
// Materials are deducted here, all-or-nothing; a materialSave effect and
// staff bonuses reduce the bill before it is checked. If the deduction
// fails the craft does not start and no effect use is spent.
func (e *Engine) StartCraft(recipeID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendingCraft != nil {
		return domain.ErrCraftPending
	}

	recipe, ok := e.recipeLocked(recipeID)
	if !ok {
		return domain.ErrRecipeNotFound
	}
	if !recipe.Unlocked {
		return domain.ErrRecipeLocked
	}

	saveRate := e.bonusTotalLocked(domain.BonusMaterial) / 100
	saveEffect, hasSaveEffect := e.peekEffectLocked(domain.EffectMaterialSave)
	if hasSaveEffect {
		saveRate += saveEffect.Value
	}
	costs := discountCosts(recipe.Materials, saveRate)

	if err := e.consumeMaterialsLocked(costs); err != nil {
		return err
	}
	if hasSaveEffect {
		e.consumeEffectLocked(domain.EffectMaterialSave)
	}

	e.pendingCraft = &pendingCraft{recipe: recipe}
	e.touch()
	return nil
}

// CancelCraft abandons a reserved craft. The materials stay spent; the
// forge does not refund a cold start.
func (e *Engine) CancelCraft() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendingCraft != nil {
		e.pendingCraft = nil
		e.touch()
	}
}

// FinishCraft resolves the reserved craft with the forging minigame's
// performance multiplier, clamped to [0.8, 1.2]. Quality derives from
// (base + qualityBonus*100 + qualityBoost) * performance against the fixed
// threshold table; a doubleForge effect multiplies the output count.
func (e *Engine) FinishCraft(performance float64) (CraftResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendingCraft == nil {
		return CraftResult{}, domain.ErrNoCraftPending
	}
	recipe := e.pendingCraft.recipe
	e.pendingCraft = nil

	performance = clampFloat(performance, domain.ForgePerformanceMin, domain.ForgePerformanceMax)

	baseScore := float64(e.rollInt(domain.CraftBaseScoreMin, domain.CraftBaseScoreMax))
	qualityBonus := e.state.QualityBonus + e.bonusTotalLocked(domain.BonusQuality)/100

	boostPoints := 0.0
	if boost, ok := e.consumeEffectLocked(domain.EffectQualityBoost); ok {
		boostPoints = boost.Value
	}

	finalScore := (baseScore + qualityBonus*100 + boostPoints) * performance
	quality := domain.QualityForScore(finalScore)
	multiplier := quality.StatMultiplier()

	count := 1
	if double, ok := e.consumeEffectLocked(domain.EffectDoubleForge); ok {
		count = int(double.Value)
		if count < 1 {
			count = 1
		}
	}

	result := CraftResult{Recipe: recipe.ID, Score: finalScore, Quality: quality}
	for i := 0; i < count; i++ {
		item := buildEquipment(recipe, quality, multiplier)
		if err := e.addItemLocked(item); err != nil {
			result.Overflow++
			continue
		}
		result.Items = append(result.Items, item)
	}

	metrics.CraftsTotal.WithLabelValues(recipe.ID, string(quality)).Inc()
	e.touch()
	return result, nil
}

// recipeLocked reads the runtime recipe list, which carries unlock flags
func (e *Engine) recipeLocked(id string) (domain.Recipe, bool) {
	for _, r := range e.state.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

// peekEffectLocked reads an effect without spending a use
func (e *Engine) peekEffectLocked(t domain.EffectType) (domain.ActiveEffect, bool) {
	if idx := e.effectIndexLocked(t); idx >= 0 {
		return e.state.ActiveEffects[idx], true
	}
	return domain.ActiveEffect{}, false
}

// discountCosts applies a material-save rate, never below one unit per cost
func discountCosts(costs []domain.MaterialCost, rate float64) []domain.MaterialCost {
	if rate <= 0 {
		return costs
	}
	if rate > 0.9 {
		rate = 0.9
	}
	out := make([]domain.MaterialCost, len(costs))
	for i, c := range costs {
		reduced := int(math.Floor(float64(c.Quantity) * (1 - rate)))
		if reduced < 1 {
			reduced = 1
		}
		out[i] = domain.MaterialCost{Type: c.Type, Quantity: reduced}
	}
	return out
}

func buildEquipment(recipe domain.Recipe, quality domain.Quality, multiplier float64) domain.Item {
	durability := int(math.Round(float64(recipe.BaseDurability) * multiplier))
	return domain.Item{
		ID:            uuid.New(),
		Name:          recipe.Name,
		Category:      domain.CategoryEquipment,
		Quality:       quality,
		SellPrice:     int(math.Round(float64(recipe.SellPrice) * multiplier)),
		Kind:          recipe.Result,
		Attack:        int(math.Round(float64(recipe.BaseAttack) * multiplier)),
		Defense:       int(math.Round(float64(recipe.BaseDefense) * multiplier)),
		Durability:    durability,
		MaxDurability: durability,
	}
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

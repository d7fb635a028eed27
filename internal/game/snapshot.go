package game

import "github.com/forgeline/LegendaryForge_Go/internal/domain"

// Snapshot returns a deep copy of the full game state together with the
// revision it was taken at. Callers may hold it as long as they like; it
// shares no memory with the live state.
func (e *Engine) Snapshot() (*domain.GameState, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneState(e.state), e.revision
}

func cloneState(s *domain.GameState) *domain.GameState {
	out := *s

	out.Inventory = append([]domain.Item(nil), s.Inventory...)
	out.Recipes = append([]domain.Recipe(nil), s.Recipes...)
	out.PurchasedUpgrades = append([]string(nil), s.PurchasedUpgrades...)
	out.Orders = append([]domain.Order(nil), s.Orders...)
	out.Expeditions = cloneExpeditions(s.Expeditions)
	out.ActiveEffects = cloneEffects(s.ActiveEffects)
	out.HiredNPCs = append([]domain.HiredNPC(nil), s.HiredNPCs...)

	out.Equipped = domain.PlayerEquipment{
		Weapon:    cloneItem(s.Equipped.Weapon),
		Armor:     cloneItem(s.Equipped.Armor),
		Accessory: cloneItem(s.Equipped.Accessory),
	}

	out.Mine = s.Mine
	out.Mine.UnlockedLevels = append([]int(nil), s.Mine.UnlockedLevels...)
	out.Mine.Logs = append([]domain.BattleLogEntry(nil), s.Mine.Logs...)
	if s.Mine.CurrentMonster != nil {
		m := *s.Mine.CurrentMonster
		out.Mine.CurrentMonster = &m
	}

	return &out
}

func cloneItem(it *domain.Item) *domain.Item {
	if it == nil {
		return nil
	}
	c := *it
	return &c
}

func cloneExpeditions(in []domain.Expedition) []domain.Expedition {
	if in == nil {
		return nil
	}
	out := make([]domain.Expedition, len(in))
	for i, exp := range in {
		out[i] = exp
		out[i].PossibleDrops = append([]domain.MaterialType(nil), exp.PossibleDrops...)
	}
	return out
}

// cloneEffects copies the counter pointers too, so a snapshot never
// observes a usage decrement happening after it was taken
func cloneEffects(in []domain.ActiveEffect) []domain.ActiveEffect {
	if in == nil {
		return nil
	}
	out := make([]domain.ActiveEffect, len(in))
	for i, eff := range in {
		out[i] = eff
		if eff.RemainingTime != nil {
			t := *eff.RemainingTime
			out[i].RemainingTime = &t
		}
		if eff.RemainingUsage != nil {
			u := *eff.RemainingUsage
			out[i].RemainingUsage = &u
		}
	}
	return out
}

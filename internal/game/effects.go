package game

import (
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
)

// PendingCards returns the card selection currently offered by a random
// event, or nil when no event is waiting
func (e *Engine) PendingCards() []domain.EventCard {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.EventCard, len(e.pendingCards))
	copy(out, e.pendingCards)
	if len(out) == 0 {
		return nil
	}
	return out
}

// ChooseCard resolves the pending event with the chosen card. A goldBonus
// card pays out immediately; anything else becomes an active effect with
// the card's counters copied onto it.
func (e *Engine) ChooseCard(cardID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pendingCards) == 0 {
		return domain.ErrNoEventPending
	}

	var card *domain.EventCard
	for i := range e.pendingCards {
		if e.pendingCards[i].ID == cardID {
			card = &e.pendingCards[i]
			break
		}
	}
	if card == nil {
		return domain.ErrCardNotOffered
	}

	switch card.EffectType {
	case domain.EffectGoldBonus:
		e.addGoldLocked(int(card.EffectValue))
	case domain.EffectDoubleForge, domain.EffectMaterialSave, domain.EffectQualityBoost, domain.EffectOrderReward:
		effect := domain.ActiveEffect{
			Type:      card.EffectType,
			Value:     card.EffectValue,
			StartTime: e.now(),
		}
		if card.Duration > 0 {
			remaining := card.Duration
			effect.RemainingTime = &remaining
		}
		if card.Usage > 0 {
			usage := card.Usage
			effect.RemainingUsage = &usage
		}
		e.state.ActiveEffects = append(e.state.ActiveEffects, effect)
	}

	metrics.EventCardsChosen.WithLabelValues(string(card.EffectType)).Inc()
	e.pendingCards = nil
	e.touch()
	return nil
}

// DismissEvent discards the pending card selection without choosing
func (e *Engine) DismissEvent() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendingCards != nil {
		e.pendingCards = nil
		e.touch()
	}
}

// drawCardsLocked picks n cards with distinct ids, weighted by rarity:
// common 60%, rare 30%, epic 10%. When a rolled rarity pool is exhausted
// the draw falls back to any remaining card.
func (e *Engine) drawCardsLocked(n int) []domain.EventCard {
	drawn := make([]domain.EventCard, 0, n)
	used := make(map[string]bool, n)

	for len(drawn) < n && len(used) < len(e.catalog.Cards) {
		rarity := e.rollRarityLocked()
		pool := e.freshCards(e.catalog.CardsByRarity(rarity), used)
		if len(pool) == 0 {
			pool = e.freshCards(e.catalog.Cards, used)
		}
		if len(pool) == 0 {
			break
		}
		card := pool[e.rollInt(0, len(pool)-1)]
		drawn = append(drawn, card)
		used[card.ID] = true
	}
	return drawn
}

func (e *Engine) rollRarityLocked() domain.CardRarity {
	roll := e.rollFloat()
	switch {
	case roll < domain.CardRarityWeights[domain.CardEpic]:
		return domain.CardEpic
	case roll < domain.CardRarityWeights[domain.CardEpic]+domain.CardRarityWeights[domain.CardRare]:
		return domain.CardRare
	default:
		return domain.CardCommon
	}
}

func (e *Engine) freshCards(cards []domain.EventCard, used map[string]bool) []domain.EventCard {
	var out []domain.EventCard
	for _, c := range cards {
		if !used[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// ActiveEffect returns the first live effect of the given type without
// consuming it
func (e *Engine) ActiveEffect(t domain.EffectType) (domain.ActiveEffect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.effectIndexLocked(t); idx >= 0 {
		return e.state.ActiveEffects[idx], true
	}
	return domain.ActiveEffect{}, false
}

// HasActiveEffect reports whether an effect of the given type is live
func (e *Engine) HasActiveEffect(t domain.EffectType) bool {
	_, ok := e.ActiveEffect(t)
	return ok
}

// ConsumeEffect returns the first live effect of the given type and, when
// it is usage-limited, spends one use, pruning the effect at zero.
func (e *Engine) ConsumeEffect(t domain.EffectType) (domain.ActiveEffect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	effect, ok := e.consumeEffectLocked(t)
	if ok {
		e.touch()
	}
	return effect, ok
}

func (e *Engine) effectIndexLocked(t domain.EffectType) int {
	for i := range e.state.ActiveEffects {
		if e.state.ActiveEffects[i].Type == t {
			return i
		}
	}
	return -1
}

func (e *Engine) consumeEffectLocked(t domain.EffectType) (domain.ActiveEffect, bool) {
	idx := e.effectIndexLocked(t)
	if idx < 0 {
		return domain.ActiveEffect{}, false
	}

	effect := e.state.ActiveEffects[idx]
	if usage := e.state.ActiveEffects[idx].RemainingUsage; usage != nil {
		*usage = *usage - 1
		if *usage <= 0 {
			e.state.ActiveEffects = append(e.state.ActiveEffects[:idx], e.state.ActiveEffects[idx+1:]...)
		}
	}
	return effect, true
}

// pruneEffectsLocked drops every effect whose tracked counter has run out
func (e *Engine) pruneEffectsLocked() []domain.EffectType {
	var expired []domain.EffectType
	kept := e.state.ActiveEffects[:0]
	for _, effect := range e.state.ActiveEffects {
		if effect.Expired() {
			expired = append(expired, effect.Type)
			continue
		}
		kept = append(kept, effect)
	}
	e.state.ActiveEffects = kept
	return expired
}

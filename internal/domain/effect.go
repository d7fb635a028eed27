package domain

import "time"

// EffectType is the closed set of buffs an event card can grant. Consumers
// switch exhaustively on this type; adding a new effect means touching every
// consumption site.
type EffectType string

const (
	// EffectGoldBonus pays out immediately on card selection and never
	// becomes an active effect
	EffectGoldBonus EffectType = "goldBonus"
	// EffectDoubleForge multiplies the output count of a craft
	EffectDoubleForge EffectType = "doubleForge"
	// EffectMaterialSave reduces the material quantities a craft deducts
	EffectMaterialSave EffectType = "materialSave"
	// EffectQualityBoost adds to the effective quality bonus for one craft
	EffectQualityBoost EffectType = "qualityBoost"
	// EffectOrderReward multiplies the gold paid out by order deliveries
	EffectOrderReward EffectType = "orderReward"
)

// CardRarity weights how often a card shows up in an event draw
type CardRarity string

const (
	CardCommon CardRarity = "common"
	CardRare   CardRarity = "rare"
	CardEpic   CardRarity = "epic"
)

// EventCard is a static card definition offered during a random event.
// Duration and Usage are copied onto the ActiveEffect a selection creates;
// a card may carry either, both, or neither (neither means permanent).
type EventCard struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rarity      CardRarity `json:"rarity"`
	EffectType  EffectType `json:"effect_type"`
	EffectValue float64    `json:"effect_value"`
	Duration    int        `json:"duration,omitempty"` // seconds
	Usage       int        `json:"usage,omitempty"`    // consumptions
}

// ActiveEffect is a live buff instantiated from a chosen event card.
// RemainingTime counts down once per tick; RemainingUsage counts down on
// consumption. An effect with neither counter is permanent until removed.
type ActiveEffect struct {
	Type           EffectType `json:"type"`
	Value          float64    `json:"value"`
	StartTime      time.Time  `json:"start_time"`
	RemainingTime  *int       `json:"remaining_time,omitempty"`
	RemainingUsage *int       `json:"remaining_usage,omitempty"`
}

// Expired reports whether any tracked counter has run out
func (e *ActiveEffect) Expired() bool {
	if e.RemainingTime != nil && *e.RemainingTime <= 0 {
		return true
	}
	if e.RemainingUsage != nil && *e.RemainingUsage <= 0 {
		return true
	}
	return false
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expedition is a time-boxed gathering task. Gold is paid on dispatch and
// rewards roll when the duration has fully elapsed.
type Expedition struct {
	ID            uuid.UUID      `json:"id"`
	MapType       string         `json:"map_type"`
	Duration      time.Duration  `json:"duration"`
	StartTime     time.Time      `json:"start_time"`
	PossibleDrops []MaterialType `json:"possible_drops"`
	Cost          int            `json:"cost"`
}

// Complete reports whether the expedition's duration has elapsed at now
func (e *Expedition) Complete(now time.Time) bool {
	return now.Sub(e.StartTime) >= e.Duration
}

// ExpeditionReward is a rolled material payout from a finished expedition
type ExpeditionReward struct {
	Type     MaterialType `json:"type"`
	Quantity int          `json:"quantity"`
}

// ExpeditionResult reports what a finished expedition produced and whether
// any rolled materials could not fit into the inventory
type ExpeditionResult struct {
	Expedition Expedition         `json:"expedition"`
	Rewards    []ExpeditionReward `json:"rewards"`
	Overflow   []ExpeditionReward `json:"overflow,omitempty"`
}

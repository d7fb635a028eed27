package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequirement constrains what a customer will accept. A zero Kind means
// the customer takes any equipment; MinAttack/MinDefense of 0 are unchecked.
type OrderRequirement struct {
	Kind       EquipmentKind `json:"kind,omitempty"`
	MinAttack  int           `json:"min_attack,omitempty"`
	MinDefense int           `json:"min_defense,omitempty"`
}

// Order is a customer request waiting in the shop. Urgent orders carry a
// time limit and expire with a reputation penalty.
type Order struct {
	ID               uuid.UUID        `json:"id"`
	Requester        string           `json:"requester"`
	Description      string           `json:"description"`
	Requirement      OrderRequirement `json:"requirement"`
	Reward           int              `json:"reward"`
	ReputationReward int              `json:"reputation_reward"`
	IsUrgent         bool             `json:"is_urgent"`
	TimeLimit        time.Duration    `json:"time_limit,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Expired reports whether the order's time limit has elapsed at now.
// Orders without a time limit never expire.
func (o *Order) Expired(now time.Time) bool {
	if o.TimeLimit <= 0 {
		return false
	}
	return now.Sub(o.CreatedAt) >= o.TimeLimit
}

// MatchResult is the outcome of scoring a delivered item against an order.
// Matches is a hard pass/fail; Score grades the delivery independently.
type MatchResult struct {
	Matches bool `json:"matches"`
	Score   int  `json:"score"`
}

// DeliveryResult summarizes a completed delivery or haggle attempt
type DeliveryResult struct {
	Match          MatchResult `json:"match"`
	GoldEarned     int         `json:"gold_earned"`
	ReputationGain int         `json:"reputation_gain"`
	ReputationLost int         `json:"reputation_lost,omitempty"`
	HaggleWon      bool        `json:"haggle_won,omitempty"`
	ItemConsumed   bool        `json:"item_consumed"`
}

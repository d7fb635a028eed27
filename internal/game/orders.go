package game

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/metrics"
	"github.com/forgeline/LegendaryForge_Go/internal/naming"
)

// Order generation tuning
const (
	orderRewardBase      = 30
	orderRewardPerLevel  = 20
	urgentOrderChance    = 0.25
	specificOrderChance  = 0.5
	urgentOrderTimeLimit = 120 * time.Second
)

// GenerateOrder rolls a new customer order scaled to the player's level.
// Fails when the order board is full.
func (e *Engine) GenerateOrder() (domain.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.state.Orders) >= e.state.MaxOrders {
		return domain.Order{}, domain.ErrOrdersFull
	}

	level := e.state.Level
	requester := naming.DisplayName(e.catalog.Requesters[e.rollInt(0, len(e.catalog.Requesters)-1)])

	order := domain.Order{
		ID:        uuid.New(),
		Requester: requester,
		Reward:    orderRewardBase + level*orderRewardPerLevel + e.rollInt(0, level*10),
		CreatedAt: e.now(),
	}

	if e.rollFloat() < specificOrderChance {
		kinds := []domain.EquipmentKind{domain.EquipWeapon, domain.EquipArmor, domain.EquipAccessory}
		kind := kinds[e.rollInt(0, len(kinds)-1)]
		order.Requirement.Kind = kind
		switch kind {
		case domain.EquipWeapon:
			order.Requirement.MinAttack = 5 + level*3 + e.rollInt(0, 5)
		case domain.EquipArmor:
			order.Requirement.MinDefense = 4 + level*2 + e.rollInt(0, 4)
		case domain.EquipAccessory:
			// Accessories are judged on quality alone
		}
		order.Description = fmt.Sprintf("%s wants a %s", requester, naming.DisplayName(string(kind)))
	} else {
		order.Description = fmt.Sprintf("%s will take any fine piece", requester)
	}

	if e.rollFloat() < urgentOrderChance {
		order.IsUrgent = true
		order.Reward *= domain.UrgentRewardMultiplier
		order.TimeLimit = urgentOrderTimeLimit
	}
	order.ReputationReward = order.Reward / domain.ReputationRewardDivisor

	e.state.Orders = append(e.state.Orders, order)
	metrics.OrdersGenerated.Inc()
	e.touch()
	return order, nil
}

// Orders returns a copy of the active order list
func (e *Engine) Orders() []domain.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Order, len(e.state.Orders))
	copy(out, e.state.Orders)
	return out
}

// CheckMatch scores an item against an order. Matches is a hard pass/fail
// on the stated requirements; Score grades the delivery from a base of 50,
// penalized for misses and adjusted by quality, clamped to [0, 100].
func CheckMatch(order domain.Order, item domain.Item) domain.MatchResult {
	res := domain.MatchResult{Matches: true, Score: domain.OrderMatchBaseScore}

	if !item.IsEquipment() {
		res.Matches = false
		res.Score -= domain.OrderTypeMismatchPenalty
	} else if order.Requirement.Kind != "" && item.Kind != order.Requirement.Kind {
		res.Matches = false
		res.Score -= domain.OrderTypeMismatchPenalty
	}
	if order.Requirement.MinAttack > 0 && item.Attack < order.Requirement.MinAttack {
		res.Matches = false
		res.Score -= domain.OrderStatUnmetPenalty
	}
	if order.Requirement.MinDefense > 0 && item.Defense < order.Requirement.MinDefense {
		res.Matches = false
		res.Score -= domain.OrderStatUnmetPenalty
	}

	res.Score += domain.OrderQualityBonus(item.Quality)

	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	return res
}

// DeliverOrder hands an inventory item to the order's customer. A matching
// delivery pays the full reward and reputation; a mismatch pays half of
// each. The item is consumed and the order closed either way.
func (e *Engine) DeliverOrder(orderID, itemID uuid.UUID) (domain.DeliveryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	orderIdx := e.orderIndexLocked(orderID)
	if orderIdx < 0 {
		return domain.DeliveryResult{}, domain.ErrOrderNotFound
	}
	itemIdx := e.itemIndexLocked(itemID)
	if itemIdx < 0 {
		return domain.DeliveryResult{}, domain.ErrItemNotFound
	}

	order := e.state.Orders[orderIdx]
	item := e.state.Inventory[itemIdx]
	match := CheckMatch(order, item)

	gold := order.Reward
	rep := order.ReputationReward
	if !match.Matches {
		gold = int(math.Floor(float64(gold) * domain.OrderMismatchRewardRate))
		rep = rep / 2
	}
	gold = e.applyOrderBonusesLocked(gold)
	rep = e.applyReputationBonusLocked(rep)

	e.removeItemLocked(itemID)
	e.removeOrderLocked(orderID)
	e.addGoldLocked(gold)
	e.addReputationLocked(rep)

	metrics.OrdersDelivered.WithLabelValues(matchLabel(match.Matches)).Inc()
	e.touch()
	return domain.DeliveryResult{
		Match:          match,
		GoldEarned:     gold,
		ReputationGain: rep,
		ItemConsumed:   true,
	}, nil
}

// HaggleOrder gambles the delivery: a won coin flip pays a 20% bonus on
// top of the match-scaled reward; a lost one closes the order for nothing,
// costs reputation, and leaves the item untouched in the inventory. Staff
// successRate bonuses tilt the flip.
func (e *Engine) HaggleOrder(orderID, itemID uuid.UUID) (domain.DeliveryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	orderIdx := e.orderIndexLocked(orderID)
	if orderIdx < 0 {
		return domain.DeliveryResult{}, domain.ErrOrderNotFound
	}
	itemIdx := e.itemIndexLocked(itemID)
	if itemIdx < 0 {
		return domain.DeliveryResult{}, domain.ErrItemNotFound
	}

	order := e.state.Orders[orderIdx]
	item := e.state.Inventory[itemIdx]
	match := CheckMatch(order, item)

	winChance := 0.5 + e.bonusTotalLocked(domain.BonusSuccessRate)/100
	if e.rollFloat() >= winChance {
		// Lost haggle: order closes empty-handed, item stays put
		e.removeOrderLocked(orderID)
		e.loseReputationLocked(domain.HaggleFailReputationPenalty)
		metrics.HagglesTotal.WithLabelValues("lost").Inc()
		e.touch()
		return domain.DeliveryResult{
			Match:          match,
			ReputationLost: domain.HaggleFailReputationPenalty,
			ItemConsumed:   false,
		}, nil
	}

	gold := order.Reward
	rep := order.ReputationReward
	if !match.Matches {
		gold = int(math.Floor(float64(gold) * domain.OrderMismatchRewardRate))
		rep = rep / 2
	}
	gold += int(math.Floor(float64(gold) * domain.HaggleBonusRate))
	gold = e.applyOrderBonusesLocked(gold)
	rep = e.applyReputationBonusLocked(rep)

	e.removeItemLocked(itemID)
	e.removeOrderLocked(orderID)
	e.addGoldLocked(gold)
	e.addReputationLocked(rep)

	metrics.HagglesTotal.WithLabelValues("won").Inc()
	e.touch()
	return domain.DeliveryResult{
		Match:          match,
		GoldEarned:     gold,
		ReputationGain: rep,
		HaggleWon:      true,
		ItemConsumed:   true,
	}, nil
}

// CancelOrder withdraws an order early. The customer does not forgive:
// cancellation carries the same reputation penalty as letting it lapse.
func (e *Engine) CancelOrder(orderID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.orderIndexLocked(orderID) < 0 {
		return domain.ErrOrderNotFound
	}
	e.removeOrderLocked(orderID)
	e.loseReputationLocked(domain.OrderExpiryReputationPenalty)
	metrics.OrdersExpired.Inc()
	e.touch()
	return nil
}

// expireOrdersLocked removes every lapsed timed order, each costing the
// flat reputation penalty with no partial credit
func (e *Engine) expireOrdersLocked(now time.Time) []domain.Order {
	var expired []domain.Order
	kept := e.state.Orders[:0]
	for _, order := range e.state.Orders {
		if order.Expired(now) {
			expired = append(expired, order)
			continue
		}
		kept = append(kept, order)
	}
	e.state.Orders = kept

	for range expired {
		e.loseReputationLocked(domain.OrderExpiryReputationPenalty)
		metrics.OrdersExpired.Inc()
	}
	return expired
}

// applyOrderBonusesLocked folds an orderReward effect and staff payout
// bonuses into a gold amount. A usage-limited effect spends one use per
// payout.
func (e *Engine) applyOrderBonusesLocked(gold int) int {
	if effect, ok := e.consumeEffectLocked(domain.EffectOrderReward); ok {
		gold += int(math.Floor(float64(gold) * effect.Value))
	}
	if boost := e.bonusTotalLocked(domain.BonusOrderReward); boost > 0 {
		gold += int(math.Floor(float64(gold) * boost / 100))
	}
	return gold
}

func (e *Engine) applyReputationBonusLocked(rep int) int {
	if boost := e.bonusTotalLocked(domain.BonusReputation); boost > 0 {
		rep += int(math.Floor(float64(rep) * boost / 100))
	}
	return rep
}

func (e *Engine) orderIndexLocked(id uuid.UUID) int {
	for i := range e.state.Orders {
		if e.state.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) removeOrderLocked(id uuid.UUID) {
	if idx := e.orderIndexLocked(id); idx >= 0 {
		e.state.Orders = append(e.state.Orders[:idx], e.state.Orders[idx+1:]...)
	}
}

func matchLabel(matches bool) string {
	if matches {
		return "match"
	}
	return "mismatch"
}

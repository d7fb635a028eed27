package game

import (
	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// Gold returns the current balance
func (e *Engine) Gold() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Gold
}

// Reputation returns the current reputation and the level derived from it
func (e *Engine) Reputation() (reputation, level int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Reputation, e.state.Level
}

// AddGold credits the balance
func (e *Engine) AddGold(amount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addGoldLocked(amount)
	e.touch()
}

func (e *Engine) addGoldLocked(amount int) {
	e.state.Gold += amount
}

// SpendGold debits the balance, failing without mutation when funds are
// insufficient
func (e *Engine) SpendGold(amount int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.spendGoldLocked(amount); err != nil {
		return err
	}
	e.touch()
	return nil
}

func (e *Engine) spendGoldLocked(amount int) error {
	if e.state.Gold < amount {
		return domain.ErrInsufficientFunds
	}
	e.state.Gold -= amount
	return nil
}

// AddReputation credits reputation and recomputes the derived level
func (e *Engine) AddReputation(amount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addReputationLocked(amount)
	e.touch()
}

func (e *Engine) addReputationLocked(amount int) {
	e.state.Reputation += amount
	e.recomputeLevelLocked()
}

// LoseReputation debits reputation, clamped at zero
func (e *Engine) LoseReputation(amount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loseReputationLocked(amount)
	e.touch()
}

func (e *Engine) loseReputationLocked(amount int) {
	e.state.Reputation -= amount
	if e.state.Reputation < 0 {
		e.state.Reputation = 0
	}
	e.recomputeLevelLocked()
}

// recomputeLevelLocked keeps level a pure function of reputation
func (e *Engine) recomputeLevelLocked() {
	e.state.Level = e.state.Reputation/domain.ReputationPerLevel + 1
}

// SellItem removes an inventory item and credits its sell price. Material
// stacks sell a single unit at a time.
func (e *Engine) SellItem(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.itemIndexLocked(id)
	if idx < 0 {
		return domain.ErrItemNotFound
	}

	item := e.state.Inventory[idx]
	if item.IsMaterial() && item.Quantity > 1 {
		e.state.Inventory[idx].Quantity--
	} else {
		e.state.Inventory = append(e.state.Inventory[:idx], e.state.Inventory[idx+1:]...)
	}
	e.addGoldLocked(item.SellPrice)
	e.touch()
	return nil
}

package game

import (
	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/google/uuid"
)

// Equipped returns a copy of the current equipment slots
func (e *Engine) Equipped() domain.PlayerEquipment {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := domain.PlayerEquipment{}
	if e.state.Equipped.Weapon != nil {
		w := *e.state.Equipped.Weapon
		out.Weapon = &w
	}
	if e.state.Equipped.Armor != nil {
		a := *e.state.Equipped.Armor
		out.Armor = &a
	}
	if e.state.Equipped.Accessory != nil {
		a := *e.state.Equipped.Accessory
		out.Accessory = &a
	}
	return out
}

// EquipItem moves an inventory item into its slot. The displaced piece, if
// any, goes back to the inventory; the swap is atomic, so the total item
// count never changes and a full inventory cannot block it.
func (e *Engine) EquipItem(itemID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.itemIndexLocked(itemID)
	if idx < 0 {
		return domain.ErrItemNotFound
	}
	item := e.state.Inventory[idx]
	if !item.IsEquipment() {
		return domain.ErrNotEquipment
	}

	slot := e.state.Equipped.Slot(item.Kind)
	if slot == nil {
		return domain.ErrNotEquipment
	}

	previous := *slot
	equipped := item
	*slot = &equipped

	if previous != nil {
		// Swap in place, no capacity check needed
		e.state.Inventory[idx] = *previous
	} else {
		e.state.Inventory = append(e.state.Inventory[:idx], e.state.Inventory[idx+1:]...)
	}
	e.touch()
	return nil
}

// UnequipSlot returns the equipped piece of a slot to the inventory
func (e *Engine) UnequipSlot(kind domain.EquipmentKind) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	slot := e.state.Equipped.Slot(kind)
	if slot == nil {
		return domain.ErrNotEquipment
	}
	if *slot == nil {
		return domain.ErrSlotEmpty
	}
	if err := e.addItemLocked(**slot); err != nil {
		return err
	}
	*slot = nil
	e.touch()
	return nil
}

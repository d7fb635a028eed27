package game

import (
	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// AddItem places an item into the inventory. Materials merge into an
// existing stack of the same type; everything else takes a new row. Fails
// without mutation when the inventory is at capacity.
func (e *Engine) AddItem(item domain.Item) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.addItemLocked(item); err != nil {
		return err
	}
	e.touch()
	return nil
}

func (e *Engine) addItemLocked(item domain.Item) error {
	if item.IsMaterial() {
		if idx := e.materialIndexLocked(item.Material); idx >= 0 {
			e.state.Inventory[idx].Quantity += item.Quantity
			return nil
		}
	}
	if len(e.state.Inventory) >= e.state.InventoryCapacity {
		return domain.ErrInventoryFull
	}
	e.state.Inventory = append(e.state.Inventory, item)
	return nil
}

// Inventory returns a copy of the current inventory
func (e *Engine) Inventory() []domain.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.Item(nil), e.state.Inventory...)
}

// RemoveItem drops an item from the inventory. Unknown ids are a no-op.
func (e *Engine) RemoveItem(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removeItemLocked(id) {
		e.touch()
	}
}

func (e *Engine) removeItemLocked(id uuid.UUID) bool {
	for i, item := range e.state.Inventory {
		if item.ID == id {
			e.state.Inventory = append(e.state.Inventory[:i], e.state.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Engine) itemIndexLocked(id uuid.UUID) int {
	for i, item := range e.state.Inventory {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) materialIndexLocked(t domain.MaterialType) int {
	for i, item := range e.state.Inventory {
		if item.IsMaterial() && item.Material == t {
			return i
		}
	}
	return -1
}

// Material returns the inventory stack for a material type, if present
func (e *Engine) Material(t domain.MaterialType) (domain.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.materialIndexLocked(t); idx >= 0 {
		return e.state.Inventory[idx], true
	}
	return domain.Item{}, false
}

// ConsumeMaterials deducts the given costs atomically: either every cost is
// satisfiable and all are deducted, or nothing changes.
func (e *Engine) ConsumeMaterials(costs []domain.MaterialCost) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.consumeMaterialsLocked(costs); err != nil {
		return err
	}
	e.touch()
	return nil
}

func (e *Engine) consumeMaterialsLocked(costs []domain.MaterialCost) error {
	// Verify the full bill before touching any stack
	for _, cost := range costs {
		idx := e.materialIndexLocked(cost.Type)
		if idx < 0 || e.state.Inventory[idx].Quantity < cost.Quantity {
			return domain.ErrInsufficientMaterials
		}
	}

	for _, cost := range costs {
		idx := e.materialIndexLocked(cost.Type)
		e.state.Inventory[idx].Quantity -= cost.Quantity
		if e.state.Inventory[idx].Quantity <= 0 {
			e.state.Inventory = append(e.state.Inventory[:idx], e.state.Inventory[idx+1:]...)
		}
	}
	return nil
}

// addMaterialLocked merges a rolled material drop into the inventory,
// reporting false when a new row would exceed capacity
func (e *Engine) addMaterialLocked(t domain.MaterialType, quantity int) bool {
	return e.addItemLocked(e.catalog.NewMaterialItem(t, quantity)) == nil
}

package handler

import "github.com/forgeline/LegendaryForge_Go/internal/domain"

// parseEquipmentKind maps a wire slot name onto the domain kind. Unknown
// names map to an invalid kind that the engine rejects.
func parseEquipmentKind(slot string) domain.EquipmentKind {
	switch slot {
	case string(domain.EquipWeapon):
		return domain.EquipWeapon
	case string(domain.EquipArmor):
		return domain.EquipArmor
	case string(domain.EquipAccessory):
		return domain.EquipAccessory
	default:
		return domain.EquipmentKind(slot)
	}
}

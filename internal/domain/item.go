package domain

import "github.com/google/uuid"

// ItemCategory separates stackable materials from unique equipment
type ItemCategory string

const (
	CategoryEquipment ItemCategory = "equipment"
	CategoryMaterial  ItemCategory = "material"
)

// EquipmentKind is the slot an equipment piece occupies when worn
type EquipmentKind string

const (
	EquipWeapon    EquipmentKind = "weapon"
	EquipArmor     EquipmentKind = "armor"
	EquipAccessory EquipmentKind = "accessory"
)

// MaterialType identifies a stackable material. Materials of the same type
// merge into a single inventory row.
type MaterialType string

const (
	MaterialIron       MaterialType = "iron"
	MaterialWood       MaterialType = "wood"
	MaterialLeather    MaterialType = "leather"
	MaterialCoal       MaterialType = "coal"
	MaterialSilver     MaterialType = "silver"
	MaterialGoldOre    MaterialType = "gold_ore"
	MaterialCrystal    MaterialType = "crystal"
	MaterialMithril    MaterialType = "mithril"
	MaterialDragonHide MaterialType = "dragon_hide"
	MaterialStarMetal  MaterialType = "star_metal"
)

// Item is a single entry in the inventory or an equipment slot. An item is
// owned by exactly one container at a time; a slot swap is the only moment
// it changes hands.
type Item struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Quality     Quality      `json:"quality"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description,omitempty"`
	SellPrice   int          `json:"sell_price"`

	// Equipment-only fields
	Kind          EquipmentKind `json:"kind,omitempty"`
	Attack        int           `json:"attack,omitempty"`
	Defense       int           `json:"defense,omitempty"`
	Durability    int           `json:"durability,omitempty"`
	MaxDurability int           `json:"max_durability,omitempty"`

	// Material-only fields
	Material MaterialType `json:"material,omitempty"`
	Quantity int          `json:"quantity,omitempty"`
}

// IsEquipment reports whether the item occupies an equipment slot when worn
func (i *Item) IsEquipment() bool {
	return i.Category == CategoryEquipment
}

// IsMaterial reports whether the item stacks by material type
func (i *Item) IsMaterial() bool {
	return i.Category == CategoryMaterial
}

// NewMaterial creates a material stack of the given type and quantity
func NewMaterial(mat MaterialType, name string, quantity, sellPrice int) Item {
	return Item{
		ID:        uuid.New(),
		Name:      name,
		Category:  CategoryMaterial,
		Quality:   QualityCommon,
		SellPrice: sellPrice,
		Material:  mat,
		Quantity:  quantity,
	}
}

// PlayerEquipment holds the worn equipment, one optional piece per slot
type PlayerEquipment struct {
	Weapon    *Item `json:"weapon,omitempty"`
	Armor     *Item `json:"armor,omitempty"`
	Accessory *Item `json:"accessory,omitempty"`
}

// Slot returns a pointer to the slot for the given equipment kind,
// or nil for an unknown kind
func (pe *PlayerEquipment) Slot(kind EquipmentKind) **Item {
	switch kind {
	case EquipWeapon:
		return &pe.Weapon
	case EquipArmor:
		return &pe.Armor
	case EquipAccessory:
		return &pe.Accessory
	default:
		return nil
	}
}

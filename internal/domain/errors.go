package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInventoryFull         = "inventory is full"
	ErrMsgItemNotFound          = "item not found"
	ErrMsgInsufficientMaterials = "insufficient materials"
	ErrMsgInsufficientFunds     = "insufficient funds"

	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgRecipeLocked   = "recipe is locked"
	ErrMsgCraftPending   = "a craft is already in progress"
	ErrMsgNoCraftPending = "no craft in progress"

	ErrMsgOrderNotFound = "order not found"
	ErrMsgOrdersFull    = "order board is full"

	ErrMsgLevelLocked = "mine level is locked"
	ErrMsgNoMonster   = "no monster present"
	ErrMsgBattleBusy  = "battle already in progress"
	ErrMsgCannotMine  = "mining not available"

	ErrMsgRosterFull  = "roster is full"
	ErrMsgNPCNotFound = "staff member not found"

	ErrMsgUpgradeNotFound = "upgrade not found"
	ErrMsgUpgradeOwned    = "upgrade already purchased"
	ErrMsgUpgradeLocked   = "upgrade is locked"

	ErrMsgNotEquipment = "item is not equipment"
	ErrMsgSlotEmpty    = "equipment slot is empty"

	ErrMsgNoEventPending = "no event pending"
	ErrMsgCardNotOffered = "card was not offered"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	ErrInventoryFull         = errors.New(ErrMsgInventoryFull)
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrInsufficientMaterials = errors.New(ErrMsgInsufficientMaterials)
	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeLocked   = errors.New(ErrMsgRecipeLocked)
	ErrCraftPending   = errors.New(ErrMsgCraftPending)
	ErrNoCraftPending = errors.New(ErrMsgNoCraftPending)

	ErrOrderNotFound = errors.New(ErrMsgOrderNotFound)
	ErrOrdersFull    = errors.New(ErrMsgOrdersFull)

	ErrLevelLocked = errors.New(ErrMsgLevelLocked)
	ErrNoMonster   = errors.New(ErrMsgNoMonster)
	ErrBattleBusy  = errors.New(ErrMsgBattleBusy)
	ErrCannotMine  = errors.New(ErrMsgCannotMine)

	ErrRosterFull  = errors.New(ErrMsgRosterFull)
	ErrNPCNotFound = errors.New(ErrMsgNPCNotFound)

	ErrUpgradeNotFound = errors.New(ErrMsgUpgradeNotFound)
	ErrUpgradeOwned    = errors.New(ErrMsgUpgradeOwned)
	ErrUpgradeLocked   = errors.New(ErrMsgUpgradeLocked)

	ErrNotEquipment = errors.New(ErrMsgNotEquipment)
	ErrSlotEmpty    = errors.New(ErrMsgSlotEmpty)

	ErrNoEventPending = errors.New(ErrMsgNoEventPending)
	ErrCardNotOffered = errors.New(ErrMsgCardNotOffered)
)

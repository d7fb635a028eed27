package handler

// Generic HTTP error messages for client responses. These intentionally do
// not expose internal error details. Both handlers and tests should
// reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest    = "Invalid request body"
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgCraftFailed      = "Failed to craft item"
	ErrMsgSellItemFailed   = "Failed to sell item"
	ErrMsgDeliverFailed    = "Failed to deliver order"
	ErrMsgSaveFailed       = "Failed to save game"
	ErrMsgRestoreFailed    = "Failed to restore game"
	ErrMsgSnapshotFailed   = "Failed to read game state"
	ErrMsgDispatchFailed   = "Failed to dispatch expedition"
	ErrMsgHireFailed       = "Failed to hire staff"
	ErrMsgPurchaseFailed   = "Failed to purchase upgrade"
	ErrMsgEquipFailed      = "Failed to equip item"
	ErrMsgBattleFailed     = "Failed to resolve battle"
	ErrMsgMiningFailed     = "Failed to mine"
	ErrMsgChooseCardFailed = "Failed to choose event card"
)

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// SellItemRequest identifies the inventory item to sell
type SellItemRequest struct {
	ItemID uuid.UUID `json:"item_id"`
}

// EquipRequest identifies the inventory item to equip
type EquipRequest struct {
	ItemID uuid.UUID `json:"item_id"`
}

// UnequipRequest names the slot to clear
type UnequipRequest struct {
	Slot string `json:"slot"`
}

// HandleGetInventory returns the current inventory
func HandleGetInventory(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Inventory()})
	}
}

// HandleSellItem sells one inventory item (one unit, for material stacks)
func HandleSellItem(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.SellItem(req.ItemID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item sold"})
	}
}

// HandleGetEquipment returns the three equipment slots
func HandleGetEquipment(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Equipped()})
	}
}

// HandleEquipItem moves an inventory item into its equipment slot
func HandleEquipItem(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.EquipItem(req.ItemID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Item equipped", Data: engine.Equipped()})
	}
}

// HandleUnequipSlot returns an equipped piece to the inventory
func HandleUnequipSlot(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnequipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.UnequipSlot(parseEquipmentKind(req.Slot)); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Slot cleared", Data: engine.Equipped()})
	}
}

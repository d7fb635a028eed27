package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// DeliverOrderRequest pairs an order with the item fulfilling it
type DeliverOrderRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	ItemID  uuid.UUID `json:"item_id"`
}

// CancelOrderRequest identifies the order to abandon
type CancelOrderRequest struct {
	OrderID uuid.UUID `json:"order_id"`
}

// HandleGetOrders returns the open order board
func HandleGetOrders(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Orders()})
	}
}

// HandleGenerateOrder rolls a new customer order onto the board
func HandleGenerateOrder(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := engine.GenerateOrder()
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Order posted", Data: order})
	}
}

// HandleDeliverOrder fulfills an order with an inventory item
func HandleDeliverOrder(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeliverOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		result, err := engine.DeliverOrder(req.OrderID, req.ItemID)
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Order delivered", Data: result})
	}
}

// HandleHaggleOrder delivers with a 50/50 gamble on the payout
func HandleHaggleOrder(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeliverOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		result, err := engine.HaggleOrder(req.OrderID, req.ItemID)
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Haggle resolved", Data: result})
	}
}

// HandleCancelOrder abandons an order, taking the reputation hit
func HandleCancelOrder(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.CancelOrder(req.OrderID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Order cancelled"})
	}
}

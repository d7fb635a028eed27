package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// ChooseCardRequest names the offered card to take
type ChooseCardRequest struct {
	CardID string `json:"card_id"`
}

// HandleGetEvent returns the cards waiting on the player, if any
func HandleGetEvent(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.PendingCards()})
	}
}

// HandleChooseCard takes one of the offered event cards
func HandleChooseCard(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChooseCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.ChooseCard(req.CardID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Card chosen"})
	}
}

// HandleDismissEvent declines the offered cards and restarts the cooldown
func HandleDismissEvent(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.DismissEvent()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Event dismissed"})
	}
}

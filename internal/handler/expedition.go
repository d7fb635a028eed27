package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// DispatchExpeditionRequest names the destination map
type DispatchExpeditionRequest struct {
	MapType string `json:"map_type"`
}

// HandleGetExpeditions returns expeditions currently in the field
func HandleGetExpeditions(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Expeditions()})
	}
}

// HandleDispatchExpedition pays the fee and sends a gathering party out
func HandleDispatchExpedition(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DispatchExpeditionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		exp, err := engine.DispatchExpedition(req.MapType)
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Expedition dispatched", Data: exp})
	}
}

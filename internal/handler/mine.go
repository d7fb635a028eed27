package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// EnterMineRequest names the level to descend to
type EnterMineRequest struct {
	Level int `json:"level"`
}

// HandleGetMine returns the mine's current state and battle log
func HandleGetMine(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.MineState()})
	}
}

// HandleEnterMine moves the player to an unlocked mine level
func HandleEnterMine(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EnterMineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.EnterMine(req.Level); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Entered mine", Data: engine.MineState()})
	}
}

// HandleBattle runs one attack exchange against the current monster
func HandleBattle(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := engine.PerformBattle()
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: report})
	}
}

// HandleMining digs the vein opened by a victory
func HandleMining(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := engine.PerformMining()
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Vein mined", Data: report})
	}
}

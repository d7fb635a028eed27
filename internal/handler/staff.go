package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// HireRequest names the quality tier to hire from
type HireRequest struct {
	Quality string `json:"quality"`
}

// StaffMemberRequest identifies one hired NPC
type StaffMemberRequest struct {
	StaffID uuid.UUID `json:"staff_id"`
}

// HandleGetStaff returns the hired roster
func HandleGetStaff(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Staff()})
	}
}

// HandleHireStaff hires a random NPC from a quality tier's pool
func HandleHireStaff(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		npc, err := engine.HireNPC(domain.Quality(strings.ToUpper(req.Quality)))
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Staff hired", Data: npc})
	}
}

// HandleFireStaff dismisses a hired NPC
func HandleFireStaff(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StaffMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		engine.FireNPC(req.StaffID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Staff dismissed"})
	}
}

// HandleTrainStaff raises a staff member's experience level by one
func HandleTrainStaff(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StaffMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.UpgradeNPCExperience(req.StaffID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Staff trained"})
	}
}

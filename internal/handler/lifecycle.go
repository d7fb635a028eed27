package handler

import (
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
	"github.com/forgeline/LegendaryForge_Go/internal/save"
)

// HandleAdvanceDay closes out the current day
func HandleAdvanceDay(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := engine.AdvanceDay()
		respondJSON(w, http.StatusOK, DataResponse{Message: "Day advanced", Data: report})
	}
}

// HandleSaveGame persists the current state to the configured slot
func HandleSaveGame(saver save.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := saver.Save(r.Context()); err != nil {
			respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Game saved"})
	}
}

// RestoreResponse reports what loading did
type RestoreResponse struct {
	Restored bool `json:"restored"`
	Migrated bool `json:"migrated"`
}

// HandleRestoreGame reloads the configured slot into the engine
func HandleRestoreGame(saver save.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		restored, migrated, err := saver.Restore(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, ErrMsgRestoreFailed)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{
			Message: "Restore complete",
			Data:    RestoreResponse{Restored: restored, Migrated: migrated},
		})
	}
}

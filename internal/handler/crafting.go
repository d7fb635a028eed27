package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// StartCraftRequest names the recipe to put on the forge
type StartCraftRequest struct {
	RecipeID string `json:"recipe_id"`
}

// FinishCraftRequest carries the forge minigame performance in [0.8, 1.2]
type FinishCraftRequest struct {
	Performance float64 `json:"performance"`
}

// HandleGetRecipes returns the recipe list with unlock flags
func HandleGetRecipes(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Recipes()})
	}
}

// HandleStartCraft reserves materials and puts a recipe on the forge
func HandleStartCraft(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartCraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.StartCraft(req.RecipeID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Craft started"})
	}
}

// HandleFinishCraft resolves the pending craft into finished items
func HandleFinishCraft(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FinishCraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		result, err := engine.FinishCraft(req.Performance)
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "Craft finished", Data: result})
	}
}

// HandleCancelCraft abandons the pending craft. Consumed materials stay
// consumed.
func HandleCancelCraft(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.CancelCraft()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Craft cancelled"})
	}
}

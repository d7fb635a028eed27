package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// PurchaseUpgradeRequest names the shop upgrade to buy
type PurchaseUpgradeRequest struct {
	UpgradeID string `json:"upgrade_id"`
}

// HandleGetUpgrades returns the shop with purchase and availability flags
func HandleGetUpgrades(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: engine.Upgrades()})
	}
}

// HandlePurchaseUpgrade buys a one-time shop upgrade
func HandlePurchaseUpgrade(engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseUpgradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := engine.PurchaseUpgrade(req.UpgradeID); err != nil {
			respondEngineError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Upgrade purchased"})
	}
}

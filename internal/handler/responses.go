package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing left but to log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for engine errors. These intentionally do not
// expose internal details.
const (
	ErrMsgUnknownError = "Unknown error"

	ErrMsgInventoryFullError    = "Inventory is full"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotEnoughMaterialsErr = "Not enough materials"
	ErrMsgNotEnoughGoldError    = "Not enough gold"

	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgRecipeLockedError   = "Recipe is locked. Purchase the unlock in the shop"
	ErrMsgCraftPendingError   = "The forge is already busy"
	ErrMsgNoCraftPendingError = "Nothing is on the forge"

	ErrMsgOrderNotFoundError = "Order not found"
	ErrMsgOrdersFullError    = "The order board is full"

	ErrMsgLevelLockedError = "That mine level is still locked"
	ErrMsgNoMonsterError   = "There is nothing to fight"
	ErrMsgBattleBusyError  = "A battle is already underway"
	ErrMsgCannotMineError  = "Defeat the monster before mining"

	ErrMsgRosterFullError  = "Your staff roster is full"
	ErrMsgNPCNotFoundError = "Staff member not found"

	ErrMsgUpgradeNotFoundError = "Upgrade not found"
	ErrMsgUpgradeOwnedError    = "You already own that upgrade"
	ErrMsgUpgradeLockedError   = "That upgrade requires a higher forge level"

	ErrMsgNotEquipmentError = "That item cannot be equipped"
	ErrMsgSlotEmptyError    = "That equipment slot is empty"

	ErrMsgNoEventPendingError = "No event is waiting"
	ErrMsgCardNotOfferedError = "That card was not offered"
)

// mapEngineErrorToUserMessage maps domain errors to HTTP status codes and
// messages players can act on
func mapEngineErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientMaterials):
		return http.StatusBadRequest, ErrMsgNotEnoughMaterialsErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughGoldError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrRecipeLocked):
		return http.StatusForbidden, ErrMsgRecipeLockedError
	case errors.Is(err, domain.ErrCraftPending):
		return http.StatusConflict, ErrMsgCraftPendingError
	case errors.Is(err, domain.ErrNoCraftPending):
		return http.StatusConflict, ErrMsgNoCraftPendingError
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ErrMsgOrderNotFoundError
	case errors.Is(err, domain.ErrOrdersFull):
		return http.StatusConflict, ErrMsgOrdersFullError
	case errors.Is(err, domain.ErrLevelLocked):
		return http.StatusForbidden, ErrMsgLevelLockedError
	case errors.Is(err, domain.ErrNoMonster):
		return http.StatusConflict, ErrMsgNoMonsterError
	case errors.Is(err, domain.ErrBattleBusy):
		return http.StatusConflict, ErrMsgBattleBusyError
	case errors.Is(err, domain.ErrCannotMine):
		return http.StatusConflict, ErrMsgCannotMineError
	case errors.Is(err, domain.ErrRosterFull):
		return http.StatusConflict, ErrMsgRosterFullError
	case errors.Is(err, domain.ErrNPCNotFound):
		return http.StatusNotFound, ErrMsgNPCNotFoundError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundError
	case errors.Is(err, domain.ErrUpgradeOwned):
		return http.StatusConflict, ErrMsgUpgradeOwnedError
	case errors.Is(err, domain.ErrUpgradeLocked):
		return http.StatusForbidden, ErrMsgUpgradeLockedError
	case errors.Is(err, domain.ErrNotEquipment):
		return http.StatusBadRequest, ErrMsgNotEquipmentError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusConflict, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrNoEventPending):
		return http.StatusConflict, ErrMsgNoEventPendingError
	case errors.Is(err, domain.ErrCardNotOffered):
		return http.StatusBadRequest, ErrMsgCardNotOfferedError
	default:
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
}

// respondEngineError logs the real error and sends the mapped response
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapEngineErrorToUserMessage(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unhandled engine error", "path", r.URL.Path, "error", err)
	}
	respondError(w, status, msg)
}

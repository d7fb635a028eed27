package handler

import (
	"encoding/json"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/forgeline/LegendaryForge_Go/internal/game"
)

// snapshotCacheSize keeps the last few encoded snapshots. Clients polling
// between mutations hit the same revision repeatedly, so even a tiny cache
// absorbs almost all encoding work.
const snapshotCacheSize = 4

// StateHandler serves full game-state snapshots with an LRU cache keyed by
// the engine's revision counter
type StateHandler struct {
	engine *game.Engine
	cache  *lru.Cache[uint64, []byte]
}

// NewStateHandler creates a StateHandler for the engine
func NewStateHandler(engine *game.Engine) *StateHandler {
	cache, _ := lru.New[uint64, []byte](snapshotCacheSize)
	return &StateHandler{engine: engine, cache: cache}
}

// HandleGetState returns the full game state
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	revision := h.engine.Revision()
	if data, ok := h.cache.Get(revision); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	state, revision := h.engine.Snapshot()
	data, err := json.Marshal(state)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgSnapshotFailed)
		return
	}
	h.cache.Add(revision, data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

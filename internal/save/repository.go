package save

import (
	"context"
	"encoding/json"
	"sync"
)

// Repository stores save envelopes keyed by slot name
type Repository interface {
	// Put writes or replaces the slot's envelope
	Put(ctx context.Context, slot string, env Envelope) error
	// Get loads the slot's envelope, or ErrNoSave
	Get(ctx context.Context, slot string) (Envelope, error)
}

// MemoryRepository is an in-process Repository for tests and for running
// without a database. Envelopes are deep-copied through JSON so callers
// never share state with the store.
type MemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryRepository creates an empty in-memory save store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: make(map[string][]byte)}
}

// Put writes or replaces the slot's envelope
func (r *MemoryRepository) Put(_ context.Context, slot string, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot] = data
	return nil
}

// Get loads the slot's envelope, or ErrNoSave
func (r *MemoryRepository) Get(_ context.Context, slot string) (Envelope, error) {
	r.mu.RLock()
	data, ok := r.slots[slot]
	r.mu.RUnlock()
	if !ok {
		return Envelope{}, ErrNoSave
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

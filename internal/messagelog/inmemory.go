package messagelog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/roguelike-api/internal/errors"
	"github.com/KirkDiggler/roguelike-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]*Entry
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string][]*Entry),
	}
}

// Append stores a message at the end of a session's history
func (r *InMemoryRepository) Append(_ context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Message == nil {
		return nil, errors.InvalidArgument(errMessageNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &Entry{
		SessionID: input.SessionID,
		Message:   *input.Message,
		At:        r.clock.Now(),
	}
	r.store[input.SessionID] = append(r.store[input.SessionID], entry)

	return &AppendOutput{Entry: entry}, nil
}

// List retrieves a session's history, oldest first
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.store[input.SessionID]
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[len(entries)-input.Limit:]
	}

	// Return a copy to prevent external modification
	out := make([]*Entry, len(entries))
	copy(out, entries)

	return &ListOutput{Entries: out}, nil
}

// Clear removes a session's history
func (r *InMemoryRepository) Clear(_ context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := int64(len(r.store[input.SessionID]))
	delete(r.store, input.SessionID)

	return &ClearOutput{Removed: removed}, nil
}

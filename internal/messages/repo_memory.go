package messages

import (
	"context"
	"sync"
)

// MemoryRepo holds message threads keyed by client, oldest first.
type MemoryRepo struct {
	mu      sync.RWMutex
	threads map[string][]Message
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{threads: make(map[string][]Message)}
}

// Append adds a message to its client's thread.
func (r *MemoryRepo) Append(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[msg.ClientID] = append(r.threads[msg.ClientID], msg)
	return nil
}

// List returns a client's thread in chronological order.
func (r *MemoryRepo) List(ctx context.Context, clientID string) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	thread := r.threads[clientID]
	out := make([]Message, len(thread))
	copy(out, thread)
	return out, nil
}

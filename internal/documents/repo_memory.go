package documents

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. The slice holds head
// order: index 0 is the most recently inserted document.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs []Document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// InsertFront prepends a document.
func (r *MemoryRepo) InsertFront(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append([]Document{doc}, r.docs...)
	return nil
}

// Get returns a document by ID.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			return r.docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// Update replaces the stored document with the same ID, keeping its position.
func (r *MemoryRepo) Update(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == doc.ID {
			r.docs[i] = doc
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a document by ID. Unknown IDs are not an error.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns documents in head order, optionally filtered by client.
func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Document, 0, len(r.docs))
	for _, doc := range r.docs {
		if filter.ClientID != "" && doc.ClientID != filter.ClientID {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)

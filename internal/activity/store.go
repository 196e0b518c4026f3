package activity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxEntries bounds the in-memory feed.
const maxEntries = 200

// Entry is one item in the recent-activity feed.
type Entry struct {
	ID          string
	Kind        string
	Description string
	Actor       string
	Timestamp   time.Time
}

// Store keeps a bounded, newest-first activity feed in memory. It satisfies
// the Recorder interfaces of the documents and messages services.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	Now     func() time.Time
}

// NewStore constructs a Store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Record prepends an entry to the feed.
func (s *Store) Record(ctx context.Context, kind, description, actor string) {
	if ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{{
		ID:          uuid.NewString(),
		Kind:        kind,
		Description: description,
		Actor:       actor,
		Timestamp:   s.now(),
	}}, s.entries...)
	if len(s.entries) > maxEntries {
		s.entries = s.entries[:maxEntries]
	}
}

// List returns up to limit entries, newest first. A non-positive limit
// returns the whole feed.
func (s *Store) List(limit int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

package presets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"portal-backend/internal/shared/telemetry"
)

// FileStore keeps the preset list in memory and mirrors it to a JSON file
// after every mutation, synchronously. A missing or unreadable file loads as
// an empty list; corrupt content is never surfaced as an error.
type FileStore struct {
	mu      sync.RWMutex
	path    string
	presets []Preset
}

// NewFileStore opens (or initializes) the preset store at path.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	s.load()
	return s
}

func (s *FileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		telemetry.Error("presets.load_corrupt", map[string]any{
			"path": s.path,
			"err":  err.Error(),
		})
		return
	}
	s.presets = presets
}

// flush writes the current list to disk. Write failures are logged, not
// returned; the in-memory state stays authoritative for the session.
func (s *FileStore) flush() {
	data, err := json.MarshalIndent(s.presets, "", "  ")
	if err != nil {
		telemetry.Error("presets.flush_marshal", map[string]any{"err": err.Error()})
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		telemetry.Error("presets.flush_mkdir", map[string]any{"path": s.path, "err": err.Error()})
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		telemetry.Error("presets.flush_write", map[string]any{"path": s.path, "err": err.Error()})
	}
}

// List returns all presets, newest-first.
func (s *FileStore) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, clonePreset(p))
	}
	return out
}

// Get returns a preset by ID.
func (s *FileStore) Get(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.presets {
		if p.ID == id {
			return clonePreset(p), true
		}
	}
	return Preset{}, false
}

// InsertFront prepends a preset and flushes.
func (s *FileStore) InsertFront(p Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets = append([]Preset{clonePreset(p)}, s.presets...)
	s.flush()
}

// Replace overwrites the preset with the same ID and flushes. Unknown IDs
// are a silent no-op.
func (s *FileStore) Replace(p Preset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presets {
		if s.presets[i].ID == p.ID {
			s.presets[i] = clonePreset(p)
			s.flush()
			return
		}
	}
}

// Delete removes a preset by ID and flushes. Unknown IDs are a silent no-op.
func (s *FileStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.presets {
		if s.presets[i].ID == id {
			s.presets = append(s.presets[:i], s.presets[i+1:]...)
			s.flush()
			return
		}
	}
}

// Len reports the number of stored presets.
func (s *FileStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.presets)
}

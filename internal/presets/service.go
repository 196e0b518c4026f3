package presets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portal-backend/internal/documents"
	"portal-backend/internal/shared/metrics"
)

// DocumentRequester is the slice of the documents service presets need.
type DocumentRequester interface {
	RequestDocument(ctx context.Context, params documents.RequestDocumentParams) (documents.Request, error)
}

// Service contains preset business logic.
type Service struct {
	Store *FileStore
	Docs  DocumentRequester
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Save snapshots a new preset at the head of the list. The snapshot is a
// deep copy of bin ids, labels and item names; live references from the
// caller are never retained. A blank name defaults to "Preset N".
func (s *Service) Save(name string, bins []Bin) Preset {
	now := s.now()
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = fmt.Sprintf("Preset %d", s.Store.Len()+1)
	}
	preset := Preset{
		ID:        uuid.NewString(),
		Name:      trimmed,
		Bins:      cloneBins(bins),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Store.InsertFront(preset)
	return preset
}

// UpdateParams carries a partial preset update; nil fields are left as-is.
type UpdateParams struct {
	Name *string
	Bins *[]Bin
}

// Update merges a partial update into a preset and refreshes its updatedAt.
// Unknown IDs are a silent no-op.
func (s *Service) Update(id string, params UpdateParams) {
	preset, ok := s.Store.Get(id)
	if !ok {
		return
	}
	if params.Name != nil {
		preset.Name = strings.TrimSpace(*params.Name)
	}
	if params.Bins != nil {
		preset.Bins = cloneBins(*params.Bins)
	}
	preset.UpdatedAt = s.now()
	s.Store.Replace(preset)
}

// Delete removes a preset by ID.
func (s *Service) Delete(id string) {
	s.Store.Delete(id)
}

// List returns all presets.
func (s *Service) List() []Preset {
	return s.Store.List()
}

// InferFrequencyFromLabel maps a bin label to a recurrence frequency by
// substring: "day" -> daily, "month" -> monthly, "quarter" -> quarterly,
// "year" -> yearly, "one" -> one-time. Anything else defaults to one-time.
func InferFrequencyFromLabel(label string) documents.Frequency {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "day"):
		return documents.FrequencyDaily
	case strings.Contains(l, "month"):
		return documents.FrequencyMonthly
	case strings.Contains(l, "quarter"):
		return documents.FrequencyQuarterly
	case strings.Contains(l, "year"):
		return documents.FrequencyYearly
	case strings.Contains(l, "one"):
		return documents.FrequencyOneTime
	default:
		return documents.FrequencyOneTime
	}
}

// Apply requests every document type in the preset for the given client.
// Item names are de-duplicated case-insensitively across the whole preset —
// first occurrence wins, so the first bin's frequency sticks. Returns the
// number of requests made; an unknown preset ID is a silent no-op.
func (s *Service) Apply(ctx context.Context, presetID, clientID, advisorName string) (int, error) {
	preset, ok := s.Store.Get(presetID)
	if !ok {
		return 0, nil
	}

	seen := make(map[string]struct{})
	requested := 0
	for _, bin := range preset.Bins {
		frequency := InferFrequencyFromLabel(bin.Label)
		for _, item := range bin.Items {
			key := strings.ToLower(item.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if _, err := s.Docs.RequestDocument(ctx, documents.RequestDocumentParams{
				DocumentName: item.Name,
				RequestedBy:  advisorName,
				ClientID:     clientID,
				Frequency:    frequency,
			}); err != nil {
				return requested, err
			}
			requested++
		}
	}
	metrics.IncPresetApplied()
	return requested, nil
}

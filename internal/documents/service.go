package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"portal-backend/internal/shared/metrics"
	"portal-backend/internal/shared/storage/object"
)

const defaultFolder = "Documents"

// upcomingLimit caps the upcoming-due list in the overview.
const upcomingLimit = 8

// Recorder receives activity-feed entries for document events.
type Recorder interface {
	Record(ctx context.Context, kind, description, actor string)
}

// Service contains the document-request lifecycle logic.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Activity Recorder
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) record(ctx context.Context, kind, description, actor string) {
	if s.Activity != nil {
		s.Activity.Record(ctx, kind, description, actor)
	}
}

// RequestDocumentParams are the inputs for RequestDocument.
type RequestDocumentParams struct {
	DocumentName string
	Description  string
	RequestedBy  string
	ClientID     string
	Frequency    Frequency
}

// RequestDocument creates a new outstanding document, or, when a fulfilled
// document with a similar name already exists, records an update request
// against it instead — the client already has that document type on file, so
// we ask for a refresh rather than a duplicate placeholder. Either way the
// returned Request view has status "pending".
func (s *Service) RequestDocument(ctx context.Context, params RequestDocumentParams) (Request, error) {
	name := strings.TrimSpace(params.DocumentName)
	if name == "" {
		return Request{}, ErrInvalidInput
	}
	now := s.now()

	docs, err := s.Repo.List(ctx, Filter{})
	if err != nil {
		return Request{}, err
	}

	for _, doc := range docs {
		if !doc.Fulfilled() {
			continue
		}
		if !SimilarNames(doc.Name, name) {
			continue
		}
		if err := s.RequestUpdate(ctx, RequestUpdateParams{
			DocumentID:       doc.ID,
			RequestedBy:      params.RequestedBy,
			Description:      params.Description,
			RequestedVersion: extractVersionYear(name),
		}); err != nil {
			return Request{}, err
		}
		return Request{
			ID:           doc.ID,
			DocumentName: name,
			Description:  params.Description,
			RequestedBy:  params.RequestedBy,
			RequestedAt:  now,
			ClientID:     params.ClientID,
			Status:       StatusPending,
			Frequency:    params.Frequency,
		}, nil
	}

	doc := Document{
		ID:        uuid.NewString(),
		Name:      name,
		Folder:    defaultFolder,
		ClientID:  params.ClientID,
		Frequency: params.Frequency,
		CreatedAt: now,
		Request: &RequestInfo{
			RequestedBy: params.RequestedBy,
			RequestedAt: now,
			Description: params.Description,
		},
	}
	if err := s.Repo.InsertFront(ctx, doc); err != nil {
		return Request{}, err
	}
	metrics.IncDocumentRequested()
	s.record(ctx, "document", fmt.Sprintf("%s requested", name), params.RequestedBy)

	return Request{
		ID:           doc.ID,
		DocumentName: name,
		Description:  params.Description,
		RequestedBy:  params.RequestedBy,
		RequestedAt:  now,
		ClientID:     params.ClientID,
		Status:       StatusPending,
		Frequency:    params.Frequency,
	}, nil
}

// RequestUpdateParams are the inputs for RequestUpdate.
type RequestUpdateParams struct {
	DocumentID       string
	RequestedBy      string
	Description      string
	RequestedVersion string
}

// RequestUpdate marks a fulfilled document as having a pending ask for a
// newer version. Unknown IDs are a silent no-op. Outstanding documents
// cannot carry an update request.
func (s *Service) RequestUpdate(ctx context.Context, params RequestUpdateParams) error {
	doc, err := s.Repo.Get(ctx, params.DocumentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if !doc.Fulfilled() {
		return ErrInvalidInput
	}

	doc.UpdateRequest = &UpdateRequestInfo{
		RequestedBy:      params.RequestedBy,
		RequestedAt:      s.now(),
		Description:      params.Description,
		RequestedVersion: params.RequestedVersion,
	}
	if err := s.Repo.Update(ctx, doc); err != nil {
		return err
	}
	metrics.IncUpdateRequested()
	s.record(ctx, "update", fmt.Sprintf("Update requested for %s", doc.Name), params.RequestedBy)
	return nil
}

// UpdateFrequency overwrites a document's recurrence frequency. A previously
// materialized due-date override is left untouched. Unknown IDs are a silent
// no-op.
func (s *Service) UpdateFrequency(ctx context.Context, documentID string, freq Frequency) error {
	doc, err := s.Repo.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	doc.Frequency = freq
	return s.Repo.Update(ctx, doc)
}

// UpdateDueDate sets or clears the explicit due-date override, which always
// supersedes frequency-derived computation. Unknown IDs are a silent no-op.
func (s *Service) UpdateDueDate(ctx context.Context, documentID string, dueDate *time.Time) error {
	doc, err := s.Repo.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	doc.DueDate = dueDate
	return s.Repo.Update(ctx, doc)
}

// DeleteRequested removes a document record by ID, unconditionally. Callers
// are expected to only pass outstanding requests, but no fulfilled-state
// guard is enforced here.
func (s *Service) DeleteRequested(ctx context.Context, documentID string) error {
	return s.Repo.Delete(ctx, documentID)
}

// UploadParams are the inputs for Upload.
type UploadParams struct {
	FileName   string
	ClientID   string
	Folder     string
	UploadedBy string
	Body       io.Reader
}

// Upload stores the file content and reconciles it against outstanding
// requests: when the uploaded filename's stem and an outstanding request's
// name contain one another (either direction, case-insensitive), that record
// converts in place to fulfilled instead of a new record being inserted. A
// pending update request on the record is cleared too, since the fresh
// upload satisfies it. The returned bool reports whether a request was
// fulfilled.
func (s *Service) Upload(ctx context.Context, params UploadParams) (Document, bool, error) {
	if strings.TrimSpace(params.FileName) == "" {
		return Document{}, false, ErrInvalidInput
	}

	owner := params.ClientID
	if owner == "" {
		owner = params.UploadedBy
	}
	storageKey, size, mimeType, err := s.Store.Save(ctx, owner, params.FileName, params.Body)
	if err != nil {
		return Document{}, false, err
	}
	metrics.ObserveUploadSize(float64(size))

	now := s.now()
	upload := &UploadInfo{
		UploadedBy: params.UploadedBy,
		UploadedAt: now,
		MimeType:   mimeType,
		SizeBytes:  size,
		SizeLabel:  humanize.Bytes(uint64(size)),
		StorageKey: storageKey,
	}

	docs, err := s.Repo.List(ctx, Filter{})
	if err != nil {
		return Document{}, false, err
	}
	for _, doc := range docs {
		if !doc.Outstanding() {
			continue
		}
		if params.ClientID != "" && doc.ClientID != "" && doc.ClientID != params.ClientID {
			continue
		}
		if !MatchesUpload(doc.Name, params.FileName) {
			continue
		}

		doc.Upload = upload
		doc.Request = nil
		doc.UpdateRequest = nil
		if err := s.Repo.Update(ctx, doc); err != nil {
			return Document{}, false, err
		}
		metrics.IncUploadReconciled()
		s.record(ctx, "document", fmt.Sprintf("%s uploaded", doc.Name), params.UploadedBy)
		return doc, true, nil
	}

	folder := strings.TrimSpace(params.Folder)
	if folder == "" {
		folder = defaultFolder
	}
	doc := Document{
		ID:        uuid.NewString(),
		Name:      params.FileName,
		Folder:    folder,
		ClientID:  params.ClientID,
		CreatedAt: now,
		Upload:    upload,
	}
	if err := s.Repo.InsertFront(ctx, doc); err != nil {
		return Document{}, false, err
	}
	metrics.IncUploadNew()
	s.record(ctx, "document", fmt.Sprintf("%s uploaded", doc.Name), params.UploadedBy)
	return doc, false, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	return s.Repo.Get(ctx, documentID)
}

// OpenContent opens the stored object of a fulfilled document.
func (s *Service) OpenContent(ctx context.Context, documentID string) (io.ReadCloser, Document, error) {
	doc, err := s.Repo.Get(ctx, documentID)
	if err != nil {
		return nil, Document{}, err
	}
	if !doc.Fulfilled() {
		return nil, Document{}, ErrNotFound
	}
	rc, err := s.Store.Open(ctx, doc.Upload.StorageKey)
	if err != nil {
		return nil, Document{}, err
	}
	return rc, doc, nil
}

// List returns documents newest-first. State filters to "outstanding" or
// "fulfilled" when set.
func (s *Service) List(ctx context.Context, filter Filter, state string) ([]Document, error) {
	docs, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	switch state {
	case "":
		return docs, nil
	case "outstanding":
		var out []Document
		for _, d := range docs {
			if d.Outstanding() {
				out = append(out, d)
			}
		}
		return out, nil
	case "fulfilled":
		var out []Document
		for _, d := range docs {
			if d.Fulfilled() {
				out = append(out, d)
			}
		}
		return out, nil
	default:
		return nil, ErrInvalidInput
	}
}

// Groups returns documents bucketed by base display name, newest-first
// within and across groups.
func (s *Service) Groups(ctx context.Context, filter Filter) ([]Group, error) {
	docs, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return GroupByBaseName(docs), nil
}

// DueDocument pairs a document with its computed next due date.
type DueDocument struct {
	Document Document
	Due      time.Time
}

// CalendarEvent is a day-granular due-date entry for calendar rendering.
type CalendarEvent struct {
	DocumentID string
	Date       time.Time
	Title      string
}

// Overview is the due-date rollup behind the dashboard summary views.
type Overview struct {
	Overdue         []DueDocument
	DueSoon         []DueDocument
	PendingRequests []Document
	Upcoming        []DueDocument
	Calendar        []CalendarEvent
}

// Overview computes overdue and due-soon documents, outstanding requests,
// the next few upcoming due dates, and the calendar feed.
func (s *Service) Overview(ctx context.Context, filter Filter) (Overview, error) {
	docs, err := s.Repo.List(ctx, filter)
	if err != nil {
		return Overview{}, err
	}
	now := s.now()

	var ov Overview
	var withDue []DueDocument
	for _, doc := range docs {
		if doc.Outstanding() {
			ov.PendingRequests = append(ov.PendingRequests, doc)
		}
		due, ok := doc.dueDate()
		if !ok {
			continue
		}
		dd := DueDocument{Document: doc, Due: due}
		withDue = append(withDue, dd)

		switch ClassifyDueDate(due, now) {
		case DueStatusOverdue:
			ov.Overdue = append(ov.Overdue, dd)
		case DueStatusDueSoon:
			ov.DueSoon = append(ov.DueSoon, dd)
		}

		ov.Calendar = append(ov.Calendar, CalendarEvent{
			DocumentID: doc.ID,
			Date:       time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location()),
			Title:      doc.Name,
		})
	}

	sort.Slice(withDue, func(i, j int) bool {
		return withDue[i].Due.Before(withDue[j].Due)
	})
	if len(withDue) > upcomingLimit {
		withDue = withDue[:upcomingLimit]
	}
	ov.Upcoming = withDue

	return ov, nil
}

package documents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type stubStore struct {
	saves int
}

func (s *stubStore) Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (string, int64, string, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", 0, "", err
	}
	s.saves++
	return "key/" + fileName, n, "application/octet-stream", nil
}

func (s *stubStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("content")), nil
}

type recordedEntry struct {
	kind        string
	description string
	actor       string
}

type stubRecorder struct {
	entries []recordedEntry
}

func (r *stubRecorder) Record(ctx context.Context, kind, description, actor string) {
	r.entries = append(r.entries, recordedEntry{kind, description, actor})
}

func newTestService(now time.Time) (*Service, *MemoryRepo, *stubRecorder) {
	repo := NewMemoryRepo()
	rec := &stubRecorder{}
	svc := &Service{
		Repo:     repo,
		Store:    &stubStore{},
		Activity: rec,
		Now:      func() time.Time { return now },
	}
	return svc, repo, rec
}

func TestRequestDocumentCreatesOutstanding(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, repo, rec := newTestService(now)
	ctx := context.Background()

	first, err := svc.RequestDocument(ctx, RequestDocumentParams{
		DocumentName: "Tax Returns 2024",
		RequestedBy:  "Alex Advisor",
		ClientID:     "client-001",
		Frequency:    FrequencyYearly,
	})
	if err != nil {
		t.Fatalf("RequestDocument: %v", err)
	}
	if first.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", first.Status)
	}

	second, err := svc.RequestDocument(ctx, RequestDocumentParams{
		DocumentName: "Insurance Policy",
		RequestedBy:  "Alex Advisor",
		ClientID:     "client-001",
	})
	if err != nil {
		t.Fatalf("RequestDocument: %v", err)
	}

	docs, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	// Newest request sits at the head.
	if docs[0].ID != second.ID || docs[1].ID != first.ID {
		t.Fatalf("unexpected order: %q then %q", docs[0].ID, docs[1].ID)
	}
	for _, doc := range docs {
		if !doc.Outstanding() {
			t.Fatalf("expected outstanding document, got %+v", doc)
		}
	}
	if len(rec.entries) != 2 {
		t.Fatalf("expected 2 activity entries, got %d", len(rec.entries))
	}
}

func TestRequestDocumentBlankNameRejected(t *testing.T) {
	svc, _, _ := newTestService(time.Now().UTC())
	_, err := svc.RequestDocument(context.Background(), RequestDocumentParams{DocumentName: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequestDocumentSimilarNameBecomesUpdateRequest(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	existing := Document{
		ID:        "doc-1",
		Name:      "Tax Returns 2023.pdf",
		Folder:    "Documents",
		ClientID:  "client-001",
		CreatedAt: now.AddDate(-1, 0, 0),
		Upload: &UploadInfo{
			UploadedBy: "Sarah Johnson",
			UploadedAt: now.AddDate(-1, 0, 0),
			StorageKey: "key/tax-returns-2023.pdf",
		},
	}
	if err := repo.InsertFront(ctx, existing); err != nil {
		t.Fatalf("InsertFront: %v", err)
	}

	req, err := svc.RequestDocument(ctx, RequestDocumentParams{
		DocumentName: "Tax Returns 2024",
		RequestedBy:  "Alex Advisor",
		ClientID:     "client-001",
	})
	if err != nil {
		t.Fatalf("RequestDocument: %v", err)
	}
	if req.ID != existing.ID {
		t.Fatalf("expected request to target existing document, got %q", req.ID)
	}
	if req.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", req.Status)
	}

	docs, _ := repo.List(ctx, Filter{})
	if len(docs) != 1 {
		t.Fatalf("expected no new record, got %d documents", len(docs))
	}
	doc := docs[0]
	if doc.UpdateRequest == nil {
		t.Fatalf("expected an update request on the existing document")
	}
	if doc.UpdateRequest.RequestedVersion != "2024" {
		t.Fatalf("expected requested version 2024, got %q", doc.UpdateRequest.RequestedVersion)
	}
	if doc.Upload == nil {
		t.Fatalf("fulfilled state must survive an update request")
	}
}

func TestRequestUpdateOnOutstandingRejected(t *testing.T) {
	now := time.Now().UTC()
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	doc := Document{
		ID:        "doc-1",
		Name:      "Bank Statement",
		CreatedAt: now,
		Request:   &RequestInfo{RequestedBy: "Alex Advisor", RequestedAt: now},
	}
	if err := repo.InsertFront(ctx, doc); err != nil {
		t.Fatalf("InsertFront: %v", err)
	}

	err := svc.RequestUpdate(ctx, RequestUpdateParams{DocumentID: "doc-1", RequestedBy: "Alex Advisor"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc, _, rec := newTestService(time.Now().UTC())
	if err := svc.RequestUpdate(context.Background(), RequestUpdateParams{DocumentID: "missing"}); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(rec.entries) != 0 {
		t.Fatalf("expected no activity, got %d entries", len(rec.entries))
	}
}

func TestUploadReconcilesOutstandingRequest(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	if _, err := svc.RequestDocument(ctx, RequestDocumentParams{
		DocumentName: "Bank Statement",
		RequestedBy:  "Alex Advisor",
		ClientID:     "client-001",
		Frequency:    FrequencyMonthly,
	}); err != nil {
		t.Fatalf("RequestDocument: %v", err)
	}

	doc, fulfilled, err := svc.Upload(ctx, UploadParams{
		FileName:   "Bank Statement June 2024.pdf",
		ClientID:   "client-001",
		UploadedBy: "Sarah Johnson",
		Body:       strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !fulfilled {
		t.Fatalf("expected upload to fulfill the outstanding request")
	}
	if doc.Name != "Bank Statement" {
		t.Fatalf("reconciled record keeps the requested name, got %q", doc.Name)
	}
	if doc.Request != nil {
		t.Fatalf("request info must be cleared on fulfillment")
	}
	if doc.Upload == nil || doc.Upload.UploadedBy != "Sarah Johnson" {
		t.Fatalf("unexpected upload info: %+v", doc.Upload)
	}
	if doc.Frequency != FrequencyMonthly {
		t.Fatalf("recurrence must survive fulfillment, got %q", doc.Frequency)
	}

	docs, _ := repo.List(ctx, Filter{})
	if len(docs) != 1 {
		t.Fatalf("expected reconciliation in place, got %d documents", len(docs))
	}
}

func TestUploadClientMismatchCreatesNewDocument(t *testing.T) {
	now := time.Now().UTC()
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	if _, err := svc.RequestDocument(ctx, RequestDocumentParams{
		DocumentName: "Bank Statement",
		RequestedBy:  "Alex Advisor",
		ClientID:     "client-001",
	}); err != nil {
		t.Fatalf("RequestDocument: %v", err)
	}

	doc, fulfilled, err := svc.Upload(ctx, UploadParams{
		FileName:   "Bank Statement.pdf",
		ClientID:   "client-002",
		UploadedBy: "Michael Chen",
		Body:       strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if fulfilled {
		t.Fatalf("another client's request must not be fulfilled")
	}
	if doc.Folder != "Documents" {
		t.Fatalf("expected default folder, got %q", doc.Folder)
	}

	docs, _ := repo.List(ctx, Filter{})
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID != doc.ID {
		t.Fatalf("new upload must sit at the head")
	}
}

func TestUploadBlankFileNameRejected(t *testing.T) {
	svc, _, _ := newTestService(time.Now().UTC())
	_, _, err := svc.Upload(context.Background(), UploadParams{FileName: " ", Body: strings.NewReader("")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListStateFilter(t *testing.T) {
	now := time.Now().UTC()
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	outstanding := Document{ID: "d1", Name: "Bank Statement", CreatedAt: now, Request: &RequestInfo{RequestedAt: now}}
	fulfilled := Document{ID: "d2", Name: "Passport", CreatedAt: now, Upload: &UploadInfo{UploadedAt: now}}
	_ = repo.InsertFront(ctx, outstanding)
	_ = repo.InsertFront(ctx, fulfilled)

	got, err := svc.List(ctx, Filter{}, "outstanding")
	if err != nil {
		t.Fatalf("List outstanding: %v", err)
	}
	if len(got) != 1 || got[0].ID != "d1" {
		t.Fatalf("unexpected outstanding docs: %+v", got)
	}

	got, err = svc.List(ctx, Filter{}, "fulfilled")
	if err != nil {
		t.Fatalf("List fulfilled: %v", err)
	}
	if len(got) != 1 || got[0].ID != "d2" {
		t.Fatalf("unexpected fulfilled docs: %+v", got)
	}

	if _, err := svc.List(ctx, Filter{}, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown state, got %v", err)
	}
}

func TestOverviewClassifiesDueDates(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	past := now.AddDate(0, 0, -3)
	soon := now.AddDate(0, 0, 3)
	later := now.AddDate(0, 0, 30)

	overdue := Document{ID: "d1", Name: "Tax Returns", CreatedAt: now, DueDate: &past, Upload: &UploadInfo{UploadedAt: now.AddDate(-1, 0, 0)}}
	dueSoon := Document{ID: "d2", Name: "Bank Statement", CreatedAt: now, DueDate: &soon, Upload: &UploadInfo{UploadedAt: now.AddDate(0, -1, 0)}}
	farOut := Document{ID: "d3", Name: "Insurance Policy", CreatedAt: now, DueDate: &later, Upload: &UploadInfo{UploadedAt: now}}
	pending := Document{ID: "d4", Name: "Passport", CreatedAt: now, Request: &RequestInfo{RequestedAt: now}}

	for _, doc := range []Document{overdue, dueSoon, farOut, pending} {
		if err := repo.InsertFront(ctx, doc); err != nil {
			t.Fatalf("InsertFront: %v", err)
		}
	}

	ov, err := svc.Overview(ctx, Filter{})
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if len(ov.Overdue) != 1 || ov.Overdue[0].Document.ID != "d1" {
		t.Fatalf("unexpected overdue: %+v", ov.Overdue)
	}
	if len(ov.DueSoon) != 1 || ov.DueSoon[0].Document.ID != "d2" {
		t.Fatalf("unexpected due soon: %+v", ov.DueSoon)
	}
	if len(ov.PendingRequests) != 1 || ov.PendingRequests[0].ID != "d4" {
		t.Fatalf("unexpected pending requests: %+v", ov.PendingRequests)
	}
	if len(ov.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming entries, got %d", len(ov.Upcoming))
	}
	// Upcoming is sorted by due date ascending.
	if ov.Upcoming[0].Document.ID != "d1" || ov.Upcoming[1].Document.ID != "d2" || ov.Upcoming[2].Document.ID != "d3" {
		t.Fatalf("unexpected upcoming order: %+v", ov.Upcoming)
	}
	if len(ov.Calendar) != 3 {
		t.Fatalf("expected 3 calendar events, got %d", len(ov.Calendar))
	}
	for _, e := range ov.Calendar {
		if e.Date.Hour() != 0 || e.Date.Minute() != 0 {
			t.Fatalf("calendar dates must be day-truncated, got %v", e.Date)
		}
	}
}

func TestUpdateDueDateOverridesFrequency(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	doc := Document{
		ID:        "d1",
		Name:      "Bank Statement",
		Frequency: FrequencyMonthly,
		CreatedAt: now,
		Upload:    &UploadInfo{UploadedAt: now},
	}
	if err := repo.InsertFront(ctx, doc); err != nil {
		t.Fatalf("InsertFront: %v", err)
	}

	override := now.AddDate(0, 0, 2)
	if err := svc.UpdateDueDate(ctx, "d1", &override); err != nil {
		t.Fatalf("UpdateDueDate: %v", err)
	}

	got, _ := repo.Get(ctx, "d1")
	due, ok := got.dueDate()
	if !ok || !due.Equal(override) {
		t.Fatalf("expected override %v, got %v (%v)", override, due, ok)
	}

	// Clearing the override falls back to frequency arithmetic.
	if err := svc.UpdateDueDate(ctx, "d1", nil); err != nil {
		t.Fatalf("UpdateDueDate clear: %v", err)
	}
	got, _ = repo.Get(ctx, "d1")
	due, ok = got.dueDate()
	if !ok || !due.Equal(now.AddDate(0, 1, 0)) {
		t.Fatalf("expected frequency-derived due date, got %v (%v)", due, ok)
	}
}

func TestDeleteRequestedRemovesRecord(t *testing.T) {
	now := time.Now().UTC()
	svc, repo, _ := newTestService(now)
	ctx := context.Background()

	doc := Document{ID: "d1", Name: "Bank Statement", CreatedAt: now, Request: &RequestInfo{RequestedAt: now}}
	_ = repo.InsertFront(ctx, doc)

	if err := svc.DeleteRequested(ctx, "d1"); err != nil {
		t.Fatalf("DeleteRequested: %v", err)
	}
	if _, err := repo.Get(ctx, "d1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Unknown IDs are not an error.
	if err := svc.DeleteRequested(ctx, "d1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

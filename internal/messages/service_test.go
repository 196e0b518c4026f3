package messages

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRecorder struct {
	kinds []string
}

func (r *stubRecorder) Record(ctx context.Context, kind, description, actor string) {
	r.kinds = append(r.kinds, kind)
}

func TestSendAppendsToThread(t *testing.T) {
	rec := &stubRecorder{}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := &Service{
		Repo:     NewMemoryRepo(),
		Activity: rec,
		Now:      func() time.Time { return now },
	}
	ctx := context.Background()

	first, err := svc.Send(ctx, "client-001", "Alex Advisor", "advisor", "Please upload your statement.")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if first.ID == "" || !first.Timestamp.Equal(now) {
		t.Fatalf("unexpected message: %+v", first)
	}

	if _, err := svc.Send(ctx, "client-001", "Sarah Johnson", "client", "Done!"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	// Another client's thread stays separate.
	if _, err := svc.Send(ctx, "client-002", "Michael Chen", "client", "Hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	thread, err := svc.Thread(ctx, "client-001")
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(thread))
	}
	if thread[0].Sender != "Alex Advisor" || thread[1].Sender != "Sarah Johnson" {
		t.Fatalf("thread must stay chronological: %+v", thread)
	}
	if len(rec.kinds) != 3 {
		t.Fatalf("expected 3 activity entries, got %d", len(rec.kinds))
	}
}

func TestSendValidatesInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Send(ctx, "client-001", "Alex Advisor", "advisor", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank content, got %v", err)
	}
	if _, err := svc.Send(ctx, "", "Alex Advisor", "advisor", "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing client, got %v", err)
	}
}

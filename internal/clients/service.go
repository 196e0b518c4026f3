package clients

import (
	"context"

	"portal-backend/internal/documents"
)

// DocumentSource is the slice of the documents service summaries need.
type DocumentSource interface {
	List(ctx context.Context, filter documents.Filter, state string) ([]documents.Document, error)
	Overview(ctx context.Context, filter documents.Filter) (documents.Overview, error)
}

// Service computes per-client document summaries.
type Service struct {
	Repo Repo
	Docs DocumentSource
}

// List returns all clients.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.Repo.List(ctx)
}

// Summary returns the document rollup for one client.
func (s *Service) Summary(ctx context.Context, clientID string) (Summary, error) {
	client, err := s.Repo.Get(ctx, clientID)
	if err != nil {
		return Summary{}, err
	}

	filter := documents.Filter{ClientID: clientID}
	docs, err := s.Docs.List(ctx, filter, "")
	if err != nil {
		return Summary{}, err
	}
	ov, err := s.Docs.Overview(ctx, filter)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Client:          client,
		DocumentsCount:  len(docs),
		PendingRequests: len(ov.PendingRequests),
		Overdue:         len(ov.Overdue),
		DueSoon:         len(ov.DueSoon),
	}, nil
}

package documents

import "context"

// Filter narrows List results.
type Filter struct {
	ClientID string
}

// Repo defines persistence operations for documents. List order is the
// store's head order: most recently inserted first.
type Repo interface {
	InsertFront(ctx context.Context, doc Document) error
	Get(ctx context.Context, id string) (Document, error)
	Update(ctx context.Context, doc Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Document, error)
}

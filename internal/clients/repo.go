package clients

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repo defines read access to client reference data.
type Repo interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (Client, error)
}

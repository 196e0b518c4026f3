package clients

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MemoryRepo is an in-memory implementation of Repo seeded with reference
// data. Client records are read-only in this service.
type MemoryRepo struct {
	clients []Client
}

// NewMemoryRepo constructs a MemoryRepo with the default client book.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{clients: seedClients()}
}

// NewMemoryRepoWith constructs a MemoryRepo with the given clients.
func NewMemoryRepoWith(clients []Client) *MemoryRepo {
	return &MemoryRepo{clients: clients}
}

// List returns all clients.
func (r *MemoryRepo) List(ctx context.Context) ([]Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

// Get returns a client by ID.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Client, error) {
	if err := ctx.Err(); err != nil {
		return Client{}, err
	}
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, ErrNotFound
}

func seedClients() []Client {
	return []Client{
		{
			ID:             "client-001",
			Name:           "Sarah Johnson",
			Email:          "sarah.johnson@example.com",
			PortfolioValue: decimal.NewFromInt(1_250_000),
			JoinedAt:       time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "client-002",
			Name:           "Michael Chen",
			Email:          "michael.chen@example.com",
			PortfolioValue: decimal.NewFromInt(842_500),
			JoinedAt:       time.Date(2022, time.August, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "client-003",
			Name:           "Emily Rodriguez",
			Email:          "emily.rodriguez@example.com",
			PortfolioValue: decimal.NewFromInt(2_030_000),
			JoinedAt:       time.Date(2019, time.November, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

var _ Repo = (*MemoryRepo)(nil)

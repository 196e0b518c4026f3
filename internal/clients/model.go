package clients

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is static reference data used to group documents and compute
// per-client summaries. It is never mutated by the document lifecycle.
type Client struct {
	ID             string
	Name           string
	Email          string
	PortfolioValue decimal.Decimal
	JoinedAt       time.Time
}

// Summary is the per-client rollup shown on the advisor dashboard.
type Summary struct {
	Client          Client
	DocumentsCount  int
	PendingRequests int
	Overdue         int
	DueSoon         int
}

package top_sales

import (
	"context"
	"time"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
)

// DefaultLimit is the number of records returned when none is requested.
const DefaultLimit = 10

// DefaultStart is the beginning of the period when none is requested.
var DefaultStart = time.Date(2023, time.January, 2, 0, 0, 0, 0, time.Local)

// Request selects the period and how many records to return. Nil bounds
// and a zero N fall back to the defaults.
type Request struct {
	Start *time.Time
	End   *time.Time
	N     int
}

// Query handles the top sales query.
type Query struct {
	repo  contracts.SalesRepository
	clock clock.Clock
}

// NewQuery creates a new top sales query.
func NewQuery(repo contracts.SalesRepository, clock clock.Clock) *Query {
	return &Query{
		repo:  repo,
		clock: clock,
	}
}

// Execute returns the highest value sales within the period.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Sale, error) {
	start, end, n := DefaultStart, q.clock.Now(), DefaultLimit
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	if req.N != 0 {
		n = req.N
	}

	records, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewLedger(records).TopN(start, end, n)
}

package prescription_totals

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request is empty; the query always covers the whole ledger.
type Request struct{}

// Query handles the prescription totals query.
type Query struct {
	repo contracts.SalesRepository
}

// NewQuery creates a new prescription totals query.
func NewQuery(repo contracts.SalesRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute sums the sales of every prescription in first-seen order.
func (q *Query) Execute(ctx context.Context, _ *Request) ([]domain.PrescriptionTotal, error) {
	records, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewLedger(records).PrescriptionTotals(), nil
}

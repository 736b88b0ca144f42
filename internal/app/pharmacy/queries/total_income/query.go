package total_income

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request is empty; the query always covers the whole ledger.
type Request struct{}

// Result is the income over the whole ledger.
type Result struct {
	Total decimal.Decimal
	Sales int
}

// Query handles the total income query.
type Query struct {
	repo contracts.SalesRepository
}

// NewQuery creates a new total income query.
func NewQuery(repo contracts.SalesRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute sums every recorded purchase price.
func (q *Query) Execute(ctx context.Context, _ *Request) (*Result, error) {
	records, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	ledger := domain.NewLedger(records)
	return &Result{
		Total: ledger.TotalValue(),
		Sales: ledger.Len(),
	}, nil
}

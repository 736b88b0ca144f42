package list_sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request selects the sales to list. CustomerID takes precedence over
// Salesperson; with neither set every sale is returned.
type Request struct {
	CustomerID  string
	Salesperson string
}

// Result holds the matching sales and their summed purchase price.
type Result struct {
	Sales []domain.Sale
	Total decimal.Decimal
}

// Query handles the list sales query.
type Query struct {
	repo contracts.SalesRepository
}

// NewQuery creates a new list sales query.
func NewQuery(repo contracts.SalesRepository) *Query {
	return &Query{
		repo: repo,
	}
}

// Execute loads the ledger and filters it.
func (q *Query) Execute(ctx context.Context, req *Request) (*Result, error) {
	records, err := q.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	ledger := domain.NewLedger(records)

	var sales []domain.Sale
	switch {
	case req.CustomerID != "":
		sales = ledger.ByCustomer(req.CustomerID)
	case req.Salesperson != "":
		sales = ledger.ByAgent(req.Salesperson)
	default:
		sales = ledger.Sales()
	}

	return &Result{
		Sales: sales,
		Total: domain.SumTotals(sales),
	}, nil
}

package list_products

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/query"
)

// Request contains filtering parameters.
type Request struct {
	Category    string
	InStockOnly bool
}

// Query handles the list products query.
type Query struct {
	inventory contracts.Inventory
}

// NewQuery creates a new list products query.
func NewQuery(inventory contracts.Inventory) *Query {
	return &Query{
		inventory: inventory,
	}
}

// Execute returns the matching products in catalog order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := query.From(q.inventory.Products())
	if req.Category != "" {
		b = b.Where(query.Eq(productCategory, req.Category))
	}
	if req.InStockOnly {
		b = b.Where(inStock)
	}
	return b.All(), nil
}

func productCategory(p domain.Product) string { return p.Category }
func inStock(p domain.Product) bool           { return p.Quantity > 0 }

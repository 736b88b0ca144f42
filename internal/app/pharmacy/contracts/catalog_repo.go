package contracts

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// CatalogRepository persists the full product catalog.
type CatalogRepository interface {
	// Load returns every product in stored order.
	// Returns domain.ErrCatalogNotFound when the store is absent.
	Load(ctx context.Context) ([]domain.Product, error)

	// Save rewrites the catalog with products.
	Save(ctx context.Context, products []domain.Product) error
}

// Inventory is the live, mutable catalog used by the cart and checkout.
type Inventory interface {
	domain.ProductLookup

	// AdjustQuantity applies delta to the stock of code and persists the catalog.
	AdjustQuantity(ctx context.Context, code string, delta int) error

	// Products returns a snapshot of the catalog in stored order.
	Products() []domain.Product
}

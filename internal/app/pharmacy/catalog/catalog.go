// Package catalog holds the in-memory product catalog for a session and
// writes every stock change through to the catalog store.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Catalog implements contracts.Inventory.
type Catalog struct {
	mu       sync.RWMutex
	repo     contracts.CatalogRepository
	logger   *zap.Logger
	products []domain.Product
	index    map[string]int
}

var _ contracts.Inventory = (*Catalog)(nil)

// Load reads the catalog from repo.
func Load(ctx context.Context, repo contracts.CatalogRepository, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	products, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.Code] = i
	}

	logger.Debug("catalog loaded", zap.Int("products", len(products)))
	return &Catalog{
		repo:     repo,
		logger:   logger,
		products: products,
		index:    index,
	}, nil
}

// Lookup returns a copy of the product with code.
func (c *Catalog) Lookup(code string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[code]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, code)
	}
	return c.products[i], nil
}

// Products returns a copy of the catalog in stored order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// AdjustQuantity applies delta to the stock of code and saves the whole
// catalog. If the save fails the in-memory change is reverted.
func (c *Catalog) AdjustQuantity(ctx context.Context, code string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[code]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, code)
	}

	previous := c.products[i].Quantity
	if err := c.products[i].AdjustQuantity(delta); err != nil {
		return err
	}

	if err := c.repo.Save(ctx, c.products); err != nil {
		c.products[i].Quantity = previous
		c.logger.Error("failed to persist stock change",
			zap.String("code", code),
			zap.Int("delta", delta),
			zap.Error(err))
		return err
	}

	c.logger.Debug("stock adjusted",
		zap.String("code", code),
		zap.Int("from", previous),
		zap.Int("to", c.products[i].Quantity))
	return nil
}

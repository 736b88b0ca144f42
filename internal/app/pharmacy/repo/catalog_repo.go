package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_product"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// CatalogRepo implements CatalogRepository on a JSON file.
type CatalogRepo struct {
	store *jsonstore.Store[m_product.Data]
	model *m_product.Model
}

// NewCatalogRepo creates a CatalogRepo backed by path.
func NewCatalogRepo(path string) contracts.CatalogRepository {
	return &CatalogRepo{
		store: jsonstore.New[m_product.Data](path),
		model: m_product.NewModel(),
	}
}

// Load reads and validates every product. Duplicate codes are rejected.
func (r *CatalogRepo) Load(ctx context.Context) ([]domain.Product, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, r.store.Path())
		}
		return nil, err
	}

	products := r.model.ToDomainList(records)
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %s", domain.ErrInvalidProduct, p.Code)
		}
		seen[p.Code] = struct{}{}
	}
	return products, nil
}

// Save rewrites the catalog file.
func (r *CatalogRepo) Save(ctx context.Context, products []domain.Product) error {
	if err := r.store.Save(ctx, r.model.FromDomainList(products)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_sale"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// SalesRepo implements SalesRepository on a JSON file.
type SalesRepo struct {
	store *jsonstore.Store[m_sale.Data]
	model *m_sale.Model
}

// NewSalesRepo creates a SalesRepo backed by path.
func NewSalesRepo(path string) contracts.SalesRepository {
	return &SalesRepo{
		store: jsonstore.New[m_sale.Data](path),
		model: m_sale.NewModel(),
	}
}

// LoadAll returns every sale in append order.
func (r *SalesRepo) LoadAll(ctx context.Context) ([]domain.Sale, error) {
	records, err := r.store.Load(ctx)
	if err != nil {
		if errors.Is(err, jsonstore.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLedgerNotFound, r.store.Path())
		}
		return nil, err
	}
	return r.model.ToDomainList(records), nil
}

// Append writes sales after the existing records. Existing records are
// carried over as stored.
func (r *SalesRepo) Append(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	records = append(records, r.model.FromDomainList(sales)...)
	if err := r.store.Save(ctx, records); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

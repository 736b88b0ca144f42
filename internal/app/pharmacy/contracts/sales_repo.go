package contracts

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// SalesRepository is the append-only sales ledger store.
type SalesRepository interface {
	// LoadAll returns every recorded sale in append order.
	// Returns domain.ErrLedgerNotFound when the store is absent.
	LoadAll(ctx context.Context) ([]domain.Sale, error)

	// Append adds sales after the existing records. A missing store starts empty.
	Append(ctx context.Context, sales []domain.Sale) error
}

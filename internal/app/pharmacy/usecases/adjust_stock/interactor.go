package adjust_stock

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request contains the data needed to restock or write off a product.
type Request struct {
	Code  string
	Delta int // positive to restock, negative to write off
}

// Interactor handles the adjust stock use case.
type Interactor struct {
	inventory contracts.Inventory
	session   domain.Session
	logger    *zap.Logger
}

// NewInteractor creates a new adjust stock interactor.
func NewInteractor(inventory contracts.Inventory, session domain.Session, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		inventory: inventory,
		session:   session,
		logger:    logger,
	}
}

// Execute applies the delta and returns the updated product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if err := i.session.RequireSalesperson(); err != nil {
		return nil, err
	}
	if req.Delta == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if err := i.inventory.AdjustQuantity(ctx, req.Code, req.Delta); err != nil {
		return nil, err
	}

	product, err := i.inventory.Lookup(req.Code)
	if err != nil {
		return nil, err
	}

	i.logger.Info("stock adjusted",
		zap.String("code", req.Code),
		zap.Int("delta", req.Delta),
		zap.Int("quantity", product.Quantity),
		zap.String("by", i.session.UserID))
	return &product, nil
}

package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/committer"
)

// Status is the outcome of a checkout that did not fail.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusEmptyCart Status = "empty_cart"
)

// Request contains the data needed to check out a cart.
type Request struct {
	Cart         *domain.Cart
	CustomerID   string
	Prescription *domain.Prescription // nil when the customer has none
}

// Result describes a finished checkout.
type Result struct {
	Status Status
	Sales  []domain.Sale
	Total  decimal.Decimal
}

// ValidationError reports the cart entry that blocked the checkout.
type ValidationError struct {
	ProductCode string
	ProductName string
	Err         error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.ProductName, e.ProductCode, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IDGenerator produces sale record IDs.
type IDGenerator func() string

// NewSaleID returns a short random hex ID.
func NewSaleID() string {
	return uuid.NewString()[:8]
}

// Interactor handles the checkout use case.
type Interactor struct {
	inventory        contracts.Inventory
	salesRepo        contracts.SalesRepository
	prescriptionRepo contracts.PrescriptionRepository
	committer        *committer.Committer
	clock            clock.Clock
	session          domain.Session
	newID            IDGenerator
	logger           *zap.Logger
}

// NewInteractor creates a new checkout interactor acting for session.
func NewInteractor(
	inventory contracts.Inventory,
	salesRepo contracts.SalesRepository,
	prescriptionRepo contracts.PrescriptionRepository,
	committer *committer.Committer,
	clock clock.Clock,
	session domain.Session,
	logger *zap.Logger,
) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		inventory:        inventory,
		salesRepo:        salesRepo,
		prescriptionRepo: prescriptionRepo,
		committer:        committer,
		clock:            clock,
		session:          session,
		newID:            NewSaleID,
		logger:           logger,
	}
}

// WithIDGenerator replaces the sale ID source.
func (i *Interactor) WithIDGenerator(gen IDGenerator) *Interactor {
	i.newID = gen
	return i
}

// Execute validates every cart entry, then commits stock, prescription and
// ledger changes as one compensating plan. Nothing is written unless every
// entry passes validation.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Preconditions
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := i.session.RequireSalesperson(); err != nil {
		return nil, err
	}
	if req.Cart == nil || req.Cart.IsEmpty() {
		return &Result{Status: StatusEmptyCart, Total: decimal.Zero}, nil
	}

	// 2. Validate all entries before touching any store
	lines, err := req.Cart.Lines()
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := validateLine(line, req.Prescription); err != nil {
			return nil, err
		}
	}

	// 3. Build sale records sharing one timestamp
	now := i.clock.Now()
	var prescriptionID *string
	if req.Prescription != nil {
		id := req.Prescription.ID
		prescriptionID = &id
	}
	sales := make([]domain.Sale, 0, len(lines))
	for _, line := range lines {
		sales = append(sales, domain.NewSale(
			i.newID(),
			line.Product,
			line.Quantity,
			now,
			req.CustomerID,
			i.session.UserID,
			prescriptionID,
		))
	}

	// 4. Create and apply the commit plan
	plan := committer.NewPlan()
	for _, line := range lines {
		plan.Add(i.decrementStep(line))
	}
	if req.Prescription != nil {
		plan.Add(i.prescriptionStep(req.Prescription, lines))
	}
	plan.Add(committer.Step{
		Name: "append sales",
		Do: func(ctx context.Context) error {
			return i.salesRepo.Append(ctx, sales)
		},
	})

	if err := i.committer.Apply(ctx, plan); err != nil {
		i.logger.Error("checkout failed",
			zap.String("customer", req.CustomerID),
			zap.Int("entries", len(lines)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrCheckoutFailed, err)
	}

	// 5. Clear the cart
	req.Cart.Clear()

	total := domain.SumTotals(sales)
	i.logger.Info("checkout completed",
		zap.String("customer", req.CustomerID),
		zap.String("salesperson", i.session.UserID),
		zap.Int("sales", len(sales)),
		zap.String("total", total.StringFixed(2)))

	return &Result{
		Status: StatusCompleted,
		Sales:  sales,
		Total:  total,
	}, nil
}

func validateLine(line domain.CartLine, rx *domain.Prescription) error {
	if !line.Product.RequiresPrescription {
		return nil
	}
	if rx == nil {
		return &ValidationError{
			ProductCode: line.Product.Code,
			ProductName: line.Product.Name,
			Err:         domain.ErrPrescriptionRequired,
		}
	}
	if !rx.CoversLine(line.Product, line.Quantity) {
		return &ValidationError{
			ProductCode: line.Product.Code,
			ProductName: line.Product.Name,
			Err:         domain.ErrPrescriptionMismatch,
		}
	}
	return nil
}

func (i *Interactor) decrementStep(line domain.CartLine) committer.Step {
	code, qty := line.Product.Code, line.Quantity
	return committer.Step{
		Name: "decrement " + code,
		Do: func(ctx context.Context) error {
			return i.inventory.AdjustQuantity(ctx, code, -qty)
		},
		Undo: func(ctx context.Context) error {
			return i.inventory.AdjustQuantity(ctx, code, qty)
		},
	}
}

// prescriptionStep marks the prescribed lines fulfilled and saves the
// prescription. A failed save leaves the prescription as it was.
func (i *Interactor) prescriptionStep(rx *domain.Prescription, lines []domain.CartLine) committer.Step {
	snapshot := rx.Clone()
	return committer.Step{
		Name: "save prescription " + rx.ID,
		Do: func(ctx context.Context) error {
			for _, line := range lines {
				rx.MarkFulfilled(line.Product)
			}
			if err := i.prescriptionRepo.Save(ctx, rx); err != nil {
				rx.Restore(snapshot)
				return err
			}
			return nil
		},
		Undo: func(ctx context.Context) error {
			rx.Restore(snapshot)
			return i.prescriptionRepo.Save(ctx, rx)
		},
	}
}

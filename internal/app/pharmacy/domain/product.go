package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Quantity is the authoritative stock level.
type Product struct {
	Code                 string
	Name                 string
	Brand                string
	Description          string
	Quantity             int
	Price                decimal.Decimal
	DosageInstruction    string
	RequiresPrescription bool
	Category             string
}

// ProductLookup resolves a product code to the current catalog entry.
type ProductLookup interface {
	Lookup(code string) (Product, error)
}

// Validate checks the invariants a stored product must hold.
func (p Product) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidProduct)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: %s has negative quantity %d", ErrInvalidProduct, p.Code, p.Quantity)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has negative price %s", ErrInvalidProduct, p.Code, p.Price)
	}
	return nil
}

// AdjustQuantity applies delta to the stock level. A change that would take
// the quantity below zero is rejected and leaves the product untouched.
func (p *Product) AdjustQuantity(delta int) error {
	next := p.Quantity + delta
	if next < 0 {
		return fmt.Errorf("%w: %s has %d in stock, change of %d rejected", ErrNegativeStock, p.Code, p.Quantity, delta)
	}
	p.Quantity = next
	return nil
}

// LineTotal is the price of quantity units.
func (p Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

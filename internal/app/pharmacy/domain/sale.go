package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoPrescriptionLabel is shown in reports for sales made without a prescription.
const NoPrescriptionLabel = "None"

// Sale is an immutable record of one product sold during a checkout.
type Sale struct {
	ID             string
	ProductName    string
	Quantity       int
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Timestamp      time.Time
	CustomerID     string
	Salesperson    string
	PrescriptionID *string
}

// NewSale snapshots product into a sale record. The total is fixed here and
// never recomputed.
func NewSale(id string, product Product, quantity int, at time.Time, customerID, salesperson string, prescriptionID *string) Sale {
	return Sale{
		ID:             id,
		ProductName:    product.Name,
		Quantity:       quantity,
		UnitPrice:      product.Price,
		Total:          product.LineTotal(quantity),
		Timestamp:      at,
		CustomerID:     customerID,
		Salesperson:    salesperson,
		PrescriptionID: prescriptionID,
	}
}

// PrescriptionLabel returns the prescription ID or NoPrescriptionLabel.
func (s Sale) PrescriptionLabel() string {
	if s.PrescriptionID == nil {
		return NoPrescriptionLabel
	}
	return *s.PrescriptionID
}

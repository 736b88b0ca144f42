package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/checkout"
)

// CheckoutBuilder helps create checkout requests with a fluent interface.
type CheckoutBuilder struct {
	customer     string
	entries      []domain.CartEntry
	prescription *domain.Prescription
}

// NewCheckoutBuilder creates a builder for customer cust1 with an empty cart.
func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{customer: "cust1"}
}

// WithCustomer sets the customer ID.
func (b *CheckoutBuilder) WithCustomer(id string) *CheckoutBuilder {
	b.customer = id
	return b
}

// WithItem adds quantity units of code to the cart.
func (b *CheckoutBuilder) WithItem(code string, quantity int) *CheckoutBuilder {
	b.entries = append(b.entries, domain.CartEntry{Code: code, Quantity: quantity})
	return b
}

// WithPrescription attaches a prescription.
func (b *CheckoutBuilder) WithPrescription(p *domain.Prescription) *CheckoutBuilder {
	b.prescription = p
	return b
}

// Build fills a cart against the live catalog and returns the request.
func (b *CheckoutBuilder) Build(t *testing.T, svc *Services) *checkout.Request {
	t.Helper()

	cart := svc.NewCart()
	for _, e := range b.entries {
		require.NoError(t, cart.Add(e.Code, e.Quantity))
	}
	return &checkout.Request{
		Cart:         cart,
		CustomerID:   b.customer,
		Prescription: b.prescription,
	}
}

// PrescriptionBuilder helps create prescriptions with a fluent interface.
type PrescriptionBuilder struct {
	rx *domain.Prescription
}

// NewPrescriptionBuilder creates a prescription for cust1.
func NewPrescriptionBuilder(id string) *PrescriptionBuilder {
	return &PrescriptionBuilder{rx: &domain.Prescription{
		ID:         id,
		DoctorName: "Dr. Mugisha",
		CustomerID: "cust1",
		Date:       "2024-02-28",
	}}
}

// WithLine prescribes quantity units of code.
func (b *PrescriptionBuilder) WithLine(code string, quantity int) *PrescriptionBuilder {
	b.rx.Medications = append(b.rx.Medications, domain.MedicationLine{ProductCode: code, Quantity: quantity})
	return b
}

// Build returns the prescription.
func (b *PrescriptionBuilder) Build() *domain.Prescription {
	return b.rx.Clone()
}

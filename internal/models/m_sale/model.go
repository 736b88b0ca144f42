package m_sale

import (
	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
)

// Model converts between stored sale records and domain sales.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ToDomain converts a stored record. The stored purchase price is taken as
// is, never recomputed from price and quantity.
func (m *Model) ToDomain(data Data) domain.Sale {
	return domain.Sale{
		ID:             data.ID,
		ProductName:    data.Name,
		Quantity:       data.Quantity,
		UnitPrice:      decimal.NewFromFloat(data.Price),
		Total:          decimal.NewFromFloat(data.PurchasePrice),
		Timestamp:      clock.FromEpochSeconds(data.Timestamp),
		CustomerID:     data.CustomerID,
		Salesperson:    data.Salesperson,
		PrescriptionID: data.PrescriptionID,
	}
}

// FromDomain converts a sale into its stored record.
func (m *Model) FromDomain(s domain.Sale) Data {
	return Data{
		ID:             s.ID,
		Name:           s.ProductName,
		Quantity:       s.Quantity,
		Price:          s.UnitPrice.InexactFloat64(),
		PurchasePrice:  s.Total.InexactFloat64(),
		Timestamp:      clock.EpochSeconds(s.Timestamp),
		CustomerID:     s.CustomerID,
		Salesperson:    s.Salesperson,
		PrescriptionID: s.PrescriptionID,
	}
}

// ToDomainList converts records preserving order.
func (m *Model) ToDomainList(records []Data) []domain.Sale {
	out := make([]domain.Sale, 0, len(records))
	for _, rec := range records {
		out = append(out, m.ToDomain(rec))
	}
	return out
}

// FromDomainList converts sales preserving order.
func (m *Model) FromDomainList(sales []domain.Sale) []Data {
	out := make([]Data, 0, len(sales))
	for _, s := range sales {
		out = append(out, m.FromDomain(s))
	}
	return out
}

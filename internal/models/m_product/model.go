package m_product

import (
	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Model converts between stored product records and domain products.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ToDomain converts a stored record.
func (m *Model) ToDomain(data Data) domain.Product {
	return domain.Product{
		Code:                 data.Code,
		Name:                 data.Name,
		Brand:                data.Brand,
		Description:          data.Description,
		Quantity:             data.Quantity,
		Price:                decimal.NewFromFloat(data.Price),
		DosageInstruction:    data.DosageInstruction,
		RequiresPrescription: bool(data.RequiresPrescription),
		Category:             data.Category,
	}
}

// FromDomain converts a product into its stored record.
func (m *Model) FromDomain(p domain.Product) Data {
	return Data{
		Code:                 p.Code,
		Name:                 p.Name,
		Brand:                p.Brand,
		Description:          p.Description,
		Quantity:             p.Quantity,
		Price:                p.Price.InexactFloat64(),
		DosageInstruction:    p.DosageInstruction,
		RequiresPrescription: Flag(p.RequiresPrescription),
		Category:             p.Category,
	}
}

// ToDomainList converts records preserving order.
func (m *Model) ToDomainList(records []Data) []domain.Product {
	out := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, m.ToDomain(rec))
	}
	return out
}

// FromDomainList converts products preserving order.
func (m *Model) FromDomainList(products []domain.Product) []Data {
	out := make([]Data, 0, len(products))
	for _, p := range products {
		out = append(out, m.FromDomain(p))
	}
	return out
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/pkg/query"
)

// PrescriptionTotal aggregates the sales made against one prescription.
type PrescriptionTotal struct {
	PrescriptionID string
	Total          decimal.Decimal
	Sales          int
}

// Ledger is a read view over the recorded sales in load order.
type Ledger struct {
	sales []Sale
}

// NewLedger wraps sales. The slice is copied.
func NewLedger(sales []Sale) *Ledger {
	cp := make([]Sale, len(sales))
	copy(cp, sales)
	return &Ledger{sales: cp}
}

// Sales returns a copy of every record in load order.
func (l *Ledger) Sales() []Sale {
	return query.From(l.sales).All()
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.sales)
}

// TotalValue sums the purchase price of every record.
func (l *Ledger) TotalValue() decimal.Decimal {
	return SumTotals(l.sales)
}

// ByCustomer returns the records bought by customerID.
func (l *Ledger) ByCustomer(customerID string) []Sale {
	return query.From(l.sales).
		Where(query.Eq(saleCustomer, customerID)).
		All()
}

// ByAgent returns the records sold by salesperson.
func (l *Ledger) ByAgent(salesperson string) []Sale {
	return query.From(l.sales).
		Where(query.Eq(saleAgent, salesperson)).
		All()
}

// TopN returns up to n records timestamped within [start, end], highest
// purchase price first. Equal prices keep load order. A period that ends
// before it starts matches nothing.
func (l *Ledger) TopN(start, end time.Time, n int) ([]Sale, error) {
	if n <= 0 {
		return nil, ErrInvalidTopN
	}
	return query.From(l.sales).
		Where(query.Between(saleTime, start, end)).
		OrderBy(compareTotals, query.Desc).
		Limit(n).
		All(), nil
}

// PrescriptionTotals groups prescription sales by prescription ID in
// first-seen order.
func (l *Ledger) PrescriptionTotals() []PrescriptionTotal {
	withRx := query.From(l.sales).
		Where(query.IsNotNull(salePrescription)).
		All()

	totals := make([]PrescriptionTotal, 0)
	index := make(map[string]int)
	for _, sale := range withRx {
		id := *sale.PrescriptionID
		i, ok := index[id]
		if !ok {
			i = len(totals)
			index[id] = i
			totals = append(totals, PrescriptionTotal{PrescriptionID: id, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(sale.Total)
		totals[i].Sales++
	}
	return totals
}

// SumTotals adds up the purchase prices of sales.
func SumTotals(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total)
	}
	return total
}

func saleCustomer(s Sale) string      { return s.CustomerID }
func saleAgent(s Sale) string         { return s.Salesperson }
func saleTime(s Sale) time.Time       { return s.Timestamp }
func salePrescription(s Sale) *string { return s.PrescriptionID }
func compareTotals(a, b Sale) int     { return a.Total.Cmp(b.Total) }

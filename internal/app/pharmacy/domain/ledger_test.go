package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2023, 6, 3, 21, 23, 25, 0, time.UTC)

func rx(id string) *string { return &id }

func sale(id, customer, agent, total string, at time.Time, prescriptionID *string) Sale {
	amount := decimal.RequireFromString(total)
	return Sale{
		ID:             id,
		ProductName:    "Item " + id,
		Quantity:       1,
		UnitPrice:      amount,
		Total:          amount,
		Timestamp:      at,
		CustomerID:     customer,
		Salesperson:    agent,
		PrescriptionID: prescriptionID,
	}
}

func saleIDs(sales []Sale) []string {
	out := make([]string, len(sales))
	for i, s := range sales {
		out[i] = s.ID
	}
	return out
}

func TestLedger_TotalValue(t *testing.T) {
	ledger := NewLedger([]Sale{
		sale("s1", "doe", "pharma", "10.10", day, nil),
		sale("s2", "roe", "pharma", "0.20", day, nil),
	})
	assert.Equal(t, "10.30", ledger.TotalValue().StringFixed(2))
	assert.True(t, NewLedger(nil).TotalValue().IsZero())
}

func TestLedger_Filters(t *testing.T) {
	ledger := NewLedger([]Sale{
		sale("s1", "doe", "alice", "1", day, nil),
		sale("s2", "roe", "bob", "1", day, nil),
		sale("s3", "doe", "bob", "1", day, nil),
	})

	assert.Equal(t, []string{"s1", "s3"}, saleIDs(ledger.ByCustomer("doe")))
	assert.Equal(t, []string{"s2", "s3"}, saleIDs(ledger.ByAgent("bob")))
	assert.Empty(t, ledger.ByCustomer("nobody"))
}

func TestLedger_TopN(t *testing.T) {
	ledger := NewLedger([]Sale{
		sale("s30", "doe", "pharma", "30", day, nil),
		sale("s50", "doe", "pharma", "50", day.Add(time.Minute), nil),
		sale("s20", "doe", "pharma", "20", day.Add(2*time.Minute), nil),
	})

	t.Run("top one", func(t *testing.T) {
		got, err := ledger.TopN(day, day.Add(time.Hour), 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"s50"}, saleIDs(got))
	})

	t.Run("n larger than matches", func(t *testing.T) {
		got, err := ledger.TopN(day, day.Add(time.Hour), 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"s50", "s30", "s20"}, saleIDs(got))
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		got, err := ledger.TopN(day, day.Add(time.Minute), 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"s50", "s30"}, saleIDs(got))
	})

	t.Run("ties keep load order", func(t *testing.T) {
		tied := NewLedger([]Sale{
			sale("first", "doe", "pharma", "5", day, nil),
			sale("big", "doe", "pharma", "9", day, nil),
			sale("second", "doe", "pharma", "5", day, nil),
		})
		got, err := tied.TopN(day, day, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"big", "first", "second"}, saleIDs(got))
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := ledger.TopN(day, day.Add(time.Hour), 0)
		assert.ErrorIs(t, err, ErrInvalidTopN)
	})

	t.Run("end before start is empty", func(t *testing.T) {
		got, err := ledger.TopN(day.Add(24*time.Hour), day, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLedger_PrescriptionTotals(t *testing.T) {
	ledger := NewLedger([]Sale{
		sale("s1", "doe", "pharma", "15.00", day, rx("PHA1")),
		sale("s2", "doe", "pharma", "99.00", day, nil),
		sale("s3", "roe", "pharma", "7.50", day, rx("PHA2")),
		sale("s4", "doe", "pharma", "25.00", day, rx("PHA1")),
	})

	totals := ledger.PrescriptionTotals()
	require.Len(t, totals, 2)

	assert.Equal(t, "PHA1", totals[0].PrescriptionID)
	assert.Equal(t, "40.00", totals[0].Total.StringFixed(2))
	assert.Equal(t, 2, totals[0].Sales)

	assert.Equal(t, "PHA2", totals[1].PrescriptionID)
	assert.Equal(t, "7.50", totals[1].Total.StringFixed(2))
}

func TestLedger_IsACopy(t *testing.T) {
	sales := []Sale{sale("s1", "doe", "pharma", "1", day, nil)}
	ledger := NewLedger(sales)
	sales[0].ID = "mutated"

	assert.Equal(t, "s1", ledger.Sales()[0].ID)
	assert.Equal(t, 1, ledger.Len())
}

func TestSale_PrescriptionLabel(t *testing.T) {
	assert.Equal(t, "None", sale("s1", "doe", "pharma", "1", day, nil).PrescriptionLabel())
	assert.Equal(t, "PHA9", sale("s1", "doe", "pharma", "1", day, rx("PHA9")).PrescriptionLabel())
}

func TestNewSale(t *testing.T) {
	p := Product{Code: "A", Name: "Aspirin", Price: decimal.RequireFromString("1.25")}
	s := NewSale("abcd", p, 4, day, "doe", "pharma", nil)

	assert.Equal(t, "Aspirin", s.ProductName)
	assert.Equal(t, "5.00", s.Total.StringFixed(2))
	assert.Equal(t, "1.25", s.UnitPrice.StringFixed(2))
	assert.Equal(t, day, s.Timestamp)
	assert.Nil(t, s.PrescriptionID)
}

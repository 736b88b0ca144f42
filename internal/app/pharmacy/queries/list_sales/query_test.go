package list_sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

type ledgerStore []domain.Sale

func (s ledgerStore) LoadAll(ctx context.Context) ([]domain.Sale, error) { return s, nil }
func (s ledgerStore) Append(ctx context.Context, _ []domain.Sale) error  { return nil }

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	store := ledgerStore{
		{ID: "1", CustomerID: "c1", Salesperson: "s1", Total: decimal.NewFromInt(10)},
		{ID: "2", CustomerID: "c2", Salesperson: "s1", Total: decimal.NewFromInt(5)},
		{ID: "3", CustomerID: "c1", Salesperson: "s2", Total: decimal.RequireFromString("2.5")},
	}
	q := NewQuery(store)

	t.Run("all", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.Len(t, res.Sales, 3)
		assert.Equal(t, "17.50", res.Total.StringFixed(2))
	})

	t.Run("by customer", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CustomerID: "c1", Salesperson: "s1"})
		require.NoError(t, err)
		require.Len(t, res.Sales, 2)
		assert.Equal(t, "1", res.Sales[0].ID)
		assert.Equal(t, "3", res.Sales[1].ID)
	})

	t.Run("by agent", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{Salesperson: "s1"})
		require.NoError(t, err)
		assert.Len(t, res.Sales, 2)
		assert.Equal(t, "15.00", res.Total.StringFixed(2))
	})

	t.Run("no match", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CustomerID: "nobody"})
		require.NoError(t, err)
		assert.Empty(t, res.Sales)
		assert.True(t, res.Total.IsZero())
	})
}

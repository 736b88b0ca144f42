package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_AdjustQuantity(t *testing.T) {
	t.Run("sale decrements", func(t *testing.T) {
		p := Product{Code: "P1", Quantity: 5}
		require.NoError(t, p.AdjustQuantity(-3))
		assert.Equal(t, 2, p.Quantity)
	})

	t.Run("restock increments", func(t *testing.T) {
		p := Product{Code: "P1", Quantity: 5}
		require.NoError(t, p.AdjustQuantity(10))
		assert.Equal(t, 15, p.Quantity)
	})

	t.Run("down to exactly zero is allowed", func(t *testing.T) {
		p := Product{Code: "P1", Quantity: 5}
		require.NoError(t, p.AdjustQuantity(-5))
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("negative result is rejected without mutation", func(t *testing.T) {
		p := Product{Code: "P1", Quantity: 5}
		err := p.AdjustQuantity(-6)
		assert.ErrorIs(t, err, ErrNegativeStock)
		assert.Equal(t, 5, p.Quantity)
	})

	t.Run("quantity never negative over a sequence", func(t *testing.T) {
		p := Product{Code: "P1", Quantity: 3}
		for _, delta := range []int{-2, -2, 4, -10, -5, 1, -1, -1} {
			_ = p.AdjustQuantity(delta)
			assert.GreaterOrEqual(t, p.Quantity, 0)
		}
		assert.Equal(t, 0, p.Quantity)
	})
}

func TestProduct_Validate(t *testing.T) {
	valid := Product{Code: "P1", Quantity: 0, Price: decimal.RequireFromString("1.50")}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		product Product
	}{
		{"empty code", Product{Quantity: 1}},
		{"negative quantity", Product{Code: "P1", Quantity: -1}},
		{"negative price", Product{Code: "P1", Price: decimal.NewFromInt(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.product.Validate(), ErrInvalidProduct)
		})
	}
}

func TestProduct_LineTotal(t *testing.T) {
	p := Product{Price: decimal.RequireFromString("0.10")}
	assert.True(t, decimal.RequireFromString("0.30").Equal(p.LineTotal(3)))
}

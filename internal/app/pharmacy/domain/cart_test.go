package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog map[string]*Product

func (s stubCatalog) Lookup(code string) (Product, error) {
	p, ok := s[code]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return *p, nil
}

func newStubCatalog() stubCatalog {
	return stubCatalog{
		"A": {Code: "A", Name: "Aspirin", Quantity: 10, Price: decimal.NewFromInt(10)},
		"B": {Code: "B", Name: "Bandage", Quantity: 1, Price: decimal.NewFromInt(5)},
		"Q": {Code: "Q", Name: "Quinine", Quantity: 4, Price: decimal.RequireFromString("2.25"), RequiresPrescription: true},
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("new entry", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		require.NoError(t, cart.Add("A", 2))
		assert.Equal(t, 2, cart.Quantity("A"))
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("re-adding accumulates", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		require.NoError(t, cart.Add("A", 3))
		require.NoError(t, cart.Add("A", 3))
		assert.Equal(t, 6, cart.Quantity("A"))
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("non-positive quantity rejected without mutation", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		require.NoError(t, cart.Add("A", 1))
		for _, q := range []int{0, -1, -100} {
			assert.ErrorIs(t, cart.Add("A", q), ErrInvalidQuantity)
		}
		assert.Equal(t, []CartEntry{{Code: "A", Quantity: 1}}, cart.Entries())
	})

	t.Run("invalid quantity checked before lookup", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		assert.ErrorIs(t, cart.Add("missing", 0), ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		assert.ErrorIs(t, cart.Add("missing", 1), ErrProductNotFound)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("insufficient stock leaves cart unchanged", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		err := cart.Add("B", 2)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("accumulated request may not exceed stock", func(t *testing.T) {
		cart := NewCart(newStubCatalog())
		require.NoError(t, cart.Add("Q", 3))
		assert.ErrorIs(t, cart.Add("Q", 2), ErrInsufficientStock)
		assert.Equal(t, 3, cart.Quantity("Q"))
	})
}

func TestCart_EntriesKeepInsertionOrder(t *testing.T) {
	cart := NewCart(newStubCatalog())
	require.NoError(t, cart.Add("Q", 1))
	require.NoError(t, cart.Add("A", 1))
	require.NoError(t, cart.Add("B", 1))
	require.NoError(t, cart.Add("Q", 1))

	assert.Equal(t, []CartEntry{
		{Code: "Q", Quantity: 2},
		{Code: "A", Quantity: 1},
		{Code: "B", Quantity: 1},
	}, cart.Entries())
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart(newStubCatalog())
	require.NoError(t, cart.Add("A", 1))
	require.NoError(t, cart.Add("B", 1))

	assert.True(t, cart.Remove("A"))
	assert.Equal(t, []CartEntry{{Code: "B", Quantity: 1}}, cart.Entries())

	assert.False(t, cart.Remove("A"), "absent code is a no-op")
	assert.Equal(t, 1, cart.Len())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart(newStubCatalog())
	require.NoError(t, cart.Add("A", 1))
	require.NoError(t, cart.Add("B", 1))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Quantity("A"))

	require.NoError(t, cart.Add("B", 1), "cart is reusable after clear")
}

func TestCart_TotalCostIsLive(t *testing.T) {
	catalog := newStubCatalog()
	cart := NewCart(catalog)
	require.NoError(t, cart.Add("A", 2))
	require.NoError(t, cart.Add("B", 1))

	total, err := cart.TotalCost()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(total), "got %s", total)

	catalog["A"].Price = decimal.RequireFromString("12.50")
	total, err = cart.TotalCost()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(total), "got %s", total)
}

func TestCart_Lines(t *testing.T) {
	cart := NewCart(newStubCatalog())
	require.NoError(t, cart.Add("Q", 2))

	lines, err := cart.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Quinine", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "4.50", lines[0].Total.StringFixed(2))
}

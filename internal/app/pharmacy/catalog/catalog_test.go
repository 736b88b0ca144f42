package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

type memRepo struct {
	products []domain.Product
	saves    int
	saveErr  error
	loadErr  error
}

func (r *memRepo) Load(ctx context.Context) ([]domain.Product, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memRepo) Save(ctx context.Context, products []domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.products = make([]domain.Product, len(products))
	copy(r.products, products)
	return nil
}

func seed() *memRepo {
	return &memRepo{products: []domain.Product{
		{Code: "P1", Name: "Paracetamol", Quantity: 10, Price: decimal.NewFromInt(5)},
		{Code: "P2", Name: "Amoxicillin", Quantity: 3, Price: decimal.NewFromInt(20), RequiresPrescription: true},
	}}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("indexes products", func(t *testing.T) {
		c, err := Load(ctx, seed(), zaptest.NewLogger(t))
		require.NoError(t, err)

		p, err := c.Lookup("P2")
		require.NoError(t, err)
		assert.Equal(t, "Amoxicillin", p.Name)
		assert.Len(t, c.Products(), 2)
	})

	t.Run("propagates missing store", func(t *testing.T) {
		repo := &memRepo{loadErr: domain.ErrCatalogNotFound}
		_, err := Load(ctx, repo, nil)
		assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
	})
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := Load(context.Background(), seed(), nil)
	require.NoError(t, err)

	t.Run("unknown code", func(t *testing.T) {
		_, err := c.Lookup("NOPE")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("returns a copy", func(t *testing.T) {
		p, err := c.Lookup("P1")
		require.NoError(t, err)
		p.Quantity = 0

		again, err := c.Lookup("P1")
		require.NoError(t, err)
		assert.Equal(t, 10, again.Quantity)
	})
}

func TestCatalog_AdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the change", func(t *testing.T) {
		repo := seed()
		c, err := Load(ctx, repo, zaptest.NewLogger(t))
		require.NoError(t, err)

		require.NoError(t, c.AdjustQuantity(ctx, "P1", -4))

		p, _ := c.Lookup("P1")
		assert.Equal(t, 6, p.Quantity)
		assert.Equal(t, 1, repo.saves)
		assert.Equal(t, 6, repo.products[0].Quantity)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		repo := seed()
		c, err := Load(ctx, repo, nil)
		require.NoError(t, err)

		err = c.AdjustQuantity(ctx, "P2", -4)
		assert.ErrorIs(t, err, domain.ErrNegativeStock)

		p, _ := c.Lookup("P2")
		assert.Equal(t, 3, p.Quantity)
		assert.Zero(t, repo.saves)
	})

	t.Run("reverts when the save fails", func(t *testing.T) {
		repo := seed()
		c, err := Load(ctx, repo, zaptest.NewLogger(t))
		require.NoError(t, err)
		repo.saveErr = errors.Join(domain.ErrPersistence, errors.New("disk full"))

		err = c.AdjustQuantity(ctx, "P1", 5)
		assert.ErrorIs(t, err, domain.ErrPersistence)

		p, _ := c.Lookup("P1")
		assert.Equal(t, 10, p.Quantity)
	})

	t.Run("unknown code", func(t *testing.T) {
		c, err := Load(ctx, seed(), nil)
		require.NoError(t, err)
		assert.ErrorIs(t, c.AdjustQuantity(ctx, "NOPE", 1), domain.ErrProductNotFound)
	})
}

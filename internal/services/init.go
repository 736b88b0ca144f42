package services

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/config"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_prescription"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_product"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_sale"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_wish"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// ensurer creates one store if it is absent.
type ensurer struct {
	name   string
	exists func() bool
	create func(ctx context.Context) error
}

func ensure[T any](name, path string) ensurer {
	store := jsonstore.New[T](path)
	return ensurer{
		name:   name,
		exists: store.Exists,
		create: func(ctx context.Context) error { return store.Save(ctx, nil) },
	}
}

// InitStores creates the data directory and an empty collection for every
// store that does not exist yet. Existing stores are left untouched. It
// returns the names of the stores it created.
func InitStores(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// 2. Create missing stores
	stores := []ensurer{
		ensure[m_product.Data]("products", cfg.ProductsFile),
		ensure[m_sale.Data]("sales", cfg.SalesFile),
		ensure[m_prescription.Data]("prescriptions", cfg.PrescriptionsFile),
		ensure[m_wish.Data]("wishlist", cfg.WishlistFile),
	}

	created := make([]string, 0, len(stores))
	for _, s := range stores {
		if s.exists() {
			logger.Debug("store already exists", zap.String("store", s.name))
			continue
		}
		if err := s.create(ctx); err != nil {
			return created, fmt.Errorf("failed to create %s store: %w", s.name, err)
		}
		logger.Info("store created", zap.String("store", s.name))
		created = append(created, s.name)
	}
	return created, nil
}

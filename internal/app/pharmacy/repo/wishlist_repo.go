package repo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_wish"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// WishlistRepo implements WishlistRepository on a JSON file shared by all users.
type WishlistRepo struct {
	store  *jsonstore.Store[m_wish.Data]
	model  *m_wish.Model
	logger *zap.Logger
}

// NewWishlistRepo creates a WishlistRepo backed by path.
func NewWishlistRepo(path string, logger *zap.Logger) contracts.WishlistRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WishlistRepo{
		store:  jsonstore.New[m_wish.Data](path),
		model:  m_wish.NewModel(),
		logger: logger,
	}
}

// Load returns user's wishlist. A store that cannot be decoded is logged and
// treated as empty.
func (r *WishlistRepo) Load(ctx context.Context, user string) (*domain.Wishlist, error) {
	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		r.logger.Warn("wishlist store unreadable, starting empty",
			zap.String("path", r.store.Path()),
			zap.Error(err))
		records = nil
	}
	return r.model.ToDomain(user, records), nil
}

// Save rewrites the store with wl's entries, keeping other users' entries.
func (r *WishlistRepo) Save(ctx context.Context, wl *domain.Wishlist) error {
	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if err := r.store.Save(ctx, r.model.Merge(records, wl)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

package contracts

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// WishlistRepository stores every user's wishlist in one collection.
type WishlistRepository interface {
	// Load returns user's wishlist. A missing or unreadable store yields an
	// empty wishlist.
	Load(ctx context.Context, user string) (*domain.Wishlist, error)

	// Save replaces the stored entries of the wishlist's user.
	Save(ctx context.Context, wl *domain.Wishlist) error
}

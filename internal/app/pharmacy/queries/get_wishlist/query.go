package get_wishlist

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request is empty; the wishlist belongs to the session user.
type Request struct{}

// Query handles the get wishlist query.
type Query struct {
	repo    contracts.WishlistRepository
	session domain.Session
}

// NewQuery creates a new get wishlist query for the session user.
func NewQuery(repo contracts.WishlistRepository, session domain.Session) *Query {
	return &Query{
		repo:    repo,
		session: session,
	}
}

// Execute returns the session user's wishlist.
func (q *Query) Execute(ctx context.Context, _ *Request) (*domain.Wishlist, error) {
	return q.repo.Load(ctx, q.session.UserID)
}

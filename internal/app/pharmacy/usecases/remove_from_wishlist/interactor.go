package remove_from_wishlist

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request contains the product to drop.
type Request struct {
	Code string
}

// Interactor handles the remove from wishlist use case.
type Interactor struct {
	repo    contracts.WishlistRepository
	session domain.Session
}

// NewInteractor creates a new remove from wishlist interactor.
func NewInteractor(repo contracts.WishlistRepository, session domain.Session) *Interactor {
	return &Interactor{
		repo:    repo,
		session: session,
	}
}

// Execute removes the product from the session user's wishlist and saves it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Wishlist, error) {
	wl, err := i.repo.Load(ctx, i.session.UserID)
	if err != nil {
		return nil, err
	}

	if err := wl.Remove(req.Code); err != nil {
		return nil, err
	}

	if err := i.repo.Save(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

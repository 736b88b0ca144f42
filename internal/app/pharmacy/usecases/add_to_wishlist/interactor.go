package add_to_wishlist

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// Request contains the product to save.
type Request struct {
	Code string
}

// Interactor handles the add to wishlist use case.
type Interactor struct {
	catalog domain.ProductLookup
	repo    contracts.WishlistRepository
	session domain.Session
}

// NewInteractor creates a new add to wishlist interactor.
func NewInteractor(catalog domain.ProductLookup, repo contracts.WishlistRepository, session domain.Session) *Interactor {
	return &Interactor{
		catalog: catalog,
		repo:    repo,
		session: session,
	}
}

// Execute adds the product to the session user's wishlist and saves it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Wishlist, error) {
	product, err := i.catalog.Lookup(req.Code)
	if err != nil {
		return nil, err
	}

	wl, err := i.repo.Load(ctx, i.session.UserID)
	if err != nil {
		return nil, err
	}

	if err := wl.Add(product); err != nil {
		return nil, err
	}

	if err := i.repo.Save(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

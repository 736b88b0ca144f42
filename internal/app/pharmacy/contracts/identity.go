package contracts

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// IdentitySource resolves the user operating the point of sale.
type IdentitySource interface {
	// CurrentSession returns the logged-in user.
	// Returns domain.ErrNoActiveUser or domain.ErrUserNotFound.
	CurrentSession(ctx context.Context) (domain.Session, error)
}

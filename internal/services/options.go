package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/catalog"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/get_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/list_products"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/list_sales"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/prescription_totals"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/top_sales"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/total_income"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/repo"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/add_to_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/adjust_stock"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/checkout"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/remove_from_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/config"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/committer"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Logger  *zap.Logger
	Clock   clock.Clock
	Catalog *catalog.Catalog

	Prescriptions contracts.PrescriptionRepository

	ListProducts       *list_products.Query
	ListSales          *list_sales.Query
	TopSales           *top_sales.Query
	PrescriptionTotals *prescription_totals.Query
	TotalIncome        *total_income.Query

	salesRepo    contracts.SalesRepository
	wishlistRepo contracts.WishlistRepository
	identity     contracts.IdentitySource
	committer    *committer.Committer
}

// SessionServices holds the use cases that act on behalf of the logged-in user.
type SessionServices struct {
	Session domain.Session

	Checkout           *checkout.Interactor
	AdjustStock        *adjust_stock.Interactor
	AddToWishlist      *add_to_wishlist.Interactor
	RemoveFromWishlist *remove_from_wishlist.Interactor
	GetWishlist        *get_wishlist.Query
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *zap.Logger, clk clock.Clock) (*ServiceOptions, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}

	// 1. Create repositories
	catalogRepo := repo.NewCatalogRepo(cfg.ProductsFile)
	salesRepo := repo.NewSalesRepo(cfg.SalesFile)
	prescriptionRepo := repo.NewPrescriptionRepo(cfg.PrescriptionsFile)
	wishlistRepo := repo.NewWishlistRepo(cfg.WishlistFile, logger.Named("wishlist"))
	identity := repo.NewIdentityRepo(cfg.CredentialsFile, cfg.StatusFile)

	// 2. Load the live catalog
	inventory, err := catalog.Load(ctx, catalogRepo, logger.Named("catalog"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// 3. Create query use cases (read operations)
	return &ServiceOptions{
		Logger:             logger,
		Clock:              clk,
		Catalog:            inventory,
		Prescriptions:      prescriptionRepo,
		ListProducts:       list_products.NewQuery(inventory),
		ListSales:          list_sales.NewQuery(salesRepo),
		TopSales:           top_sales.NewQuery(salesRepo, clk),
		PrescriptionTotals: prescription_totals.NewQuery(salesRepo),
		TotalIncome:        total_income.NewQuery(salesRepo),
		salesRepo:          salesRepo,
		wishlistRepo:       wishlistRepo,
		identity:           identity,
		committer:          committer.NewCommitter(logger.Named("committer")),
	}, nil
}

// ForSession resolves the logged-in user and creates the command use cases
// bound to them.
func (s *ServiceOptions) ForSession(ctx context.Context) (*SessionServices, error) {
	session, err := s.identity.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.WithSession(session), nil
}

// WithSession creates the command use cases bound to session.
func (s *ServiceOptions) WithSession(session domain.Session) *SessionServices {
	logger := s.Logger.With(zap.String("user", session.UserID))
	return &SessionServices{
		Session: session,
		Checkout: checkout.NewInteractor(
			s.Catalog,
			s.salesRepo,
			s.Prescriptions,
			s.committer,
			s.Clock,
			session,
			logger.Named("checkout"),
		),
		AdjustStock:        adjust_stock.NewInteractor(s.Catalog, session, logger.Named("stock")),
		AddToWishlist:      add_to_wishlist.NewInteractor(s.Catalog, s.wishlistRepo, session),
		RemoveFromWishlist: remove_from_wishlist.NewInteractor(s.wishlistRepo, session),
		GetWishlist:        get_wishlist.NewQuery(s.wishlistRepo, session),
	}
}

// NewCart creates an empty cart validated against the live catalog.
func (s *ServiceOptions) NewCart() *domain.Cart {
	return domain.NewCart(s.Catalog)
}

// Close flushes the logger.
func (s *ServiceOptions) Close() {
	_ = s.Logger.Sync()
}

package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrCatalogNotFound   = errors.New("catalog store not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProduct    = errors.New("invalid product record")
	ErrNegativeStock     = errors.New("quantity cannot be negative")
	ErrInsufficientStock = errors.New("not enough stock available")

	// Cart errors
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// Prescription errors
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPrescriptionRequired = errors.New("product requires a prescription")
	ErrPrescriptionMismatch = errors.New("prescription does not cover product in the required quantity")

	// Ledger errors
	ErrLedgerNotFound = errors.New("sales records not found")
	ErrInvalidTopN    = errors.New("number of records must be positive")

	// Checkout errors
	ErrCheckoutFailed = errors.New("could not complete checkout")
	ErrPersistence    = errors.New("failed to persist changes")

	// Wishlist errors
	ErrAlreadyWishlisted = errors.New("product is already on the wishlist")
	ErrNotWishlisted     = errors.New("product is not on the wishlist")

	// Identity errors
	ErrNoActiveUser   = errors.New("no logged-in user")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotSalesperson = errors.New("only a salesperson may perform this operation")
)

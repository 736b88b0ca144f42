package main

import (
	"errors"
	"fmt"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/checkout"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/committer"
)

// userMessage converts an error into the text shown to the operator.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		switch {
		case errors.Is(verr, domain.ErrPrescriptionRequired):
			return fmt.Sprintf("Cannot check out: %s requires a prescription.", verr.ProductName)
		case errors.Is(verr, domain.ErrPrescriptionMismatch):
			return fmt.Sprintf("Cannot check out: the prescription does not cover %s in the quantity bought.", verr.ProductName)
		}
	}

	var cerr *committer.CommitError
	if errors.As(err, &cerr) && !cerr.RolledBack() {
		return fmt.Sprintf("Checkout failed at step %q and could not be fully rolled back (%v). "+
			"Stock and prescription records may be inconsistent. Check them before the next sale.", cerr.Step, cerr.RollbackErr)
	}

	switch {
	case errors.Is(err, errUsage):
		return err.Error()

	case errors.Is(err, domain.ErrCheckoutFailed):
		return "Checkout failed and was rolled back. No sale was recorded."

	case errors.Is(err, domain.ErrCatalogNotFound):
		return "Product catalog not found. Run 'pharmacy init' to create the data files."

	case errors.Is(err, domain.ErrProductNotFound):
		return "Product not found."

	case errors.Is(err, domain.ErrInvalidProduct):
		return "The product catalog contains an invalid record."

	case errors.Is(err, domain.ErrInsufficientStock):
		return "Not enough stock available for the requested quantity."

	case errors.Is(err, domain.ErrNegativeStock):
		return "Stock cannot go below zero."

	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Quantity must be greater than 0."

	case errors.Is(err, domain.ErrPrescriptionNotFound):
		return "Prescription not found."

	case errors.Is(err, domain.ErrLedgerNotFound):
		return "No sales have been recorded yet."

	case errors.Is(err, domain.ErrInvalidTopN):
		return "The number of records must be positive."

	case errors.Is(err, domain.ErrAlreadyWishlisted):
		return "That product is already on your wishlist."

	case errors.Is(err, domain.ErrNotWishlisted):
		return "That product is not on your wishlist."

	case errors.Is(err, domain.ErrNoActiveUser):
		return "No user is logged in."

	case errors.Is(err, domain.ErrUserNotFound):
		return "The logged-in user is not registered."

	case errors.Is(err, domain.ErrNotSalesperson):
		return "Only a salesperson can do this."

	case errors.Is(err, domain.ErrPersistence):
		return "Could not save changes to the data files."

	default:
		return "Error: " + err.Error()
	}
}

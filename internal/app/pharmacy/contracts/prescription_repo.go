package contracts

import (
	"context"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// PrescriptionRepository reads and updates stored prescriptions.
type PrescriptionRepository interface {
	// Get returns the prescription with id.
	// Returns domain.ErrPrescriptionNotFound if no record matches.
	Get(ctx context.Context, id string) (*domain.Prescription, error)

	// List returns every stored prescription.
	List(ctx context.Context) ([]*domain.Prescription, error)

	// Save replaces the stored record with the same ID.
	// Returns domain.ErrPrescriptionNotFound if no record matches.
	Save(ctx context.Context, p *domain.Prescription) error
}

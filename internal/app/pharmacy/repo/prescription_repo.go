package repo

import (
	"context"
	"fmt"
	"slices"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/contracts"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_prescription"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// PrescriptionRepo implements PrescriptionRepository on a JSON file.
type PrescriptionRepo struct {
	store *jsonstore.Store[m_prescription.Data]
	model *m_prescription.Model
}

// NewPrescriptionRepo creates a PrescriptionRepo backed by path.
func NewPrescriptionRepo(path string) contracts.PrescriptionRepository {
	return &PrescriptionRepo{
		store: jsonstore.New[m_prescription.Data](path),
		model: m_prescription.NewModel(),
	}
}

// Get returns the first prescription whose ID matches.
func (r *PrescriptionRepo) Get(ctx context.Context, id string) (*domain.Prescription, error) {
	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.PrescriptionID == id {
			return r.model.ToDomain(rec), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPrescriptionNotFound, id)
}

// List returns every prescription in stored order.
func (r *PrescriptionRepo) List(ctx context.Context) ([]*domain.Prescription, error) {
	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Prescription, 0, len(records))
	for _, rec := range records {
		out = append(out, r.model.ToDomain(rec))
	}
	return out, nil
}

// Save replaces the stored record with p's ID. It never adds a record: an
// ID that is not stored, or a missing store, gives ErrPrescriptionNotFound.
func (r *PrescriptionRepo) Save(ctx context.Context, p *domain.Prescription) error {
	records, err := r.store.LoadOrEmpty(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	i := slices.IndexFunc(records, func(rec m_prescription.Data) bool {
		return rec.PrescriptionID == p.ID
	})
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPrescriptionNotFound, p.ID)
	}
	records[i] = r.model.FromDomain(p)

	if err := r.store.Save(ctx, records); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

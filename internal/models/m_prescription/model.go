package m_prescription

import "github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"

// Model converts between stored prescriptions and domain prescriptions.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// ToDomain converts a stored record.
func (m *Model) ToDomain(data Data) *domain.Prescription {
	lines := make([]domain.MedicationLine, 0, len(data.Medications))
	for _, med := range data.Medications {
		lines = append(lines, domain.MedicationLine{
			ProductCode: med.ID,
			Name:        med.Name,
			Quantity:    med.Quantity,
			Fulfilled:   med.ProcessedStatus,
		})
	}
	return &domain.Prescription{
		ID:          data.PrescriptionID,
		DoctorName:  data.DoctorName,
		CustomerID:  data.CustomerID,
		Date:        data.Date,
		Medications: lines,
	}
}

// FromDomain converts a prescription into its stored record.
func (m *Model) FromDomain(p *domain.Prescription) Data {
	meds := make([]Medication, 0, len(p.Medications))
	for _, line := range p.Medications {
		meds = append(meds, Medication{
			ID:              line.ProductCode,
			Name:            line.Name,
			Quantity:        line.Quantity,
			ProcessedStatus: line.Fulfilled,
		})
	}
	return Data{
		DoctorName:     p.DoctorName,
		PrescriptionID: p.ID,
		Medications:    meds,
		CustomerID:     p.CustomerID,
		Date:           p.Date,
	}
}

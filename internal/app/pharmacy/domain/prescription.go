package domain

// MedicationLine is one prescribed product.
type MedicationLine struct {
	ProductCode string
	Name        string
	Quantity    int
	Fulfilled   bool
}

// Prescription authorises the sale of prescription-only products.
type Prescription struct {
	ID          string
	DoctorName  string
	CustomerID  string
	Date        string
	Medications []MedicationLine
}

// CoversLine reports whether a line for product requires no more than the
// purchased quantity. The prescription sets a minimum, not a cap.
func (p *Prescription) CoversLine(product Product, quantity int) bool {
	for _, line := range p.Medications {
		if line.ProductCode == product.Code && line.Quantity <= quantity {
			return true
		}
	}
	return false
}

// MarkFulfilled flags every line for product as fulfilled.
func (p *Prescription) MarkFulfilled(product Product) {
	for i := range p.Medications {
		if p.Medications[i].ProductCode == product.Code {
			p.Medications[i].Fulfilled = true
		}
	}
}

// Fulfilled reports whether every line has been fulfilled.
func (p *Prescription) Fulfilled() bool {
	for _, line := range p.Medications {
		if !line.Fulfilled {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (p *Prescription) Clone() *Prescription {
	cp := *p
	cp.Medications = make([]MedicationLine, len(p.Medications))
	copy(cp.Medications, p.Medications)
	return &cp
}

// Restore overwrites the fulfilment state with that of snapshot.
func (p *Prescription) Restore(snapshot *Prescription) {
	p.Medications = make([]MedicationLine, len(snapshot.Medications))
	copy(p.Medications, snapshot.Medications)
}

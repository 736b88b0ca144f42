package m_prescription

// Medication is one prescribed line.
type Medication struct {
	ID              string `json:"ID"`
	Name            string `json:"Name,omitempty"`
	Quantity        int    `json:"Quantity"`
	ProcessedStatus bool   `json:"ProcessedStatus"`
}

// Data is the stored shape of a prescription in prescriptions.json.
type Data struct {
	DoctorName     string       `json:"DoctorName"`
	PrescriptionID string       `json:"PrescriptionID"`
	Medications    []Medication `json:"Medications"`
	CustomerID     string       `json:"CustomerID"`
	Date           string       `json:"Date"`
}

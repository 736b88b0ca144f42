package m_sale

// Data is the stored shape of a sale record in sales.json. Timestamp is
// seconds since the Unix epoch.
type Data struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	PurchasePrice  float64 `json:"purchase_price"`
	Timestamp      float64 `json:"timestamp"`
	CustomerID     string  `json:"customerID"`
	Salesperson    string  `json:"salesperson"`
	PrescriptionID *string `json:"prescriptionID"`
}

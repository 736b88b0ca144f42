package m_wish

import "github.com/light-bringer/pharmacy-pos/internal/models/m_product"

// Data is a product record tagged with the user who saved it.
type Data struct {
	m_product.Data
	User string `json:"user"`
}

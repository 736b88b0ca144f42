package m_product

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Data is the stored shape of a product record in products.json.
type Data struct {
	Code                 string  `json:"code"`
	Name                 string  `json:"name"`
	Brand                string  `json:"brand"`
	Description          string  `json:"description"`
	Quantity             int     `json:"quantity"`
	Price                float64 `json:"price"`
	DosageInstruction    string  `json:"dosage_instruction"`
	RequiresPrescription Flag    `json:"requires_prescription"`
	Category             string  `json:"category"`
}

// Flag is a boolean that also accepts the numeric 0/1 encoding found in
// older data files. It is always written back as true/false.
type Flag bool

// UnmarshalJSON accepts true, false, null and any JSON number.
func (f *Flag) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "true":
		*f = true
		return nil
	case "false", "null":
		*f = false
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("invalid flag %s: %w", raw, err)
	}
	*f = n != 0
	return nil
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartEntry is a requested quantity of one product.
type CartEntry struct {
	Code     string
	Quantity int
}

// CartLine is a cart entry priced against the current catalog.
type CartLine struct {
	Product  Product
	Quantity int
	Total    decimal.Decimal
}

// Cart is the per-session selection of products pending checkout. Entries
// keep the order in which products were first added.
type Cart struct {
	catalog    ProductLookup
	order      []string
	quantities map[string]int
}

// NewCart creates an empty cart validated against catalog.
func NewCart(catalog ProductLookup) *Cart {
	return &Cart{
		catalog:    catalog,
		order:      make([]string, 0),
		quantities: make(map[string]int),
	}
}

// Add requests quantity more units of code. Requests for more than the
// catalog holds fail with ErrInsufficientStock and leave the cart unchanged.
func (c *Cart) Add(code string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	product, err := c.catalog.Lookup(code)
	if err != nil {
		return err
	}

	current, exists := c.quantities[code]
	if current+quantity > product.Quantity {
		return fmt.Errorf("%w: %s has %d in stock, %d requested", ErrInsufficientStock, product.Name, product.Quantity, current+quantity)
	}

	if !exists {
		c.order = append(c.order, code)
	}
	c.quantities[code] = current + quantity
	return nil
}

// Remove drops the entry for code. It reports whether an entry existed.
func (c *Cart) Remove(code string) bool {
	if _, ok := c.quantities[code]; !ok {
		return false
	}
	delete(c.quantities, code)
	for i, existing := range c.order {
		if existing == code {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.order = c.order[:0]
	clear(c.quantities)
}

// Quantity returns the requested quantity for code, zero when absent.
func (c *Cart) Quantity(code string) int {
	return c.quantities[code]
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

// Entries returns the cart contents in insertion order.
func (c *Cart) Entries() []CartEntry {
	entries := make([]CartEntry, 0, len(c.order))
	for _, code := range c.order {
		entries = append(entries, CartEntry{Code: code, Quantity: c.quantities[code]})
	}
	return entries
}

// Lines prices every entry at the catalog's current price.
func (c *Cart) Lines() ([]CartLine, error) {
	lines := make([]CartLine, 0, len(c.order))
	for _, entry := range c.Entries() {
		product, err := c.catalog.Lookup(entry.Code)
		if err != nil {
			return nil, err
		}
		lines = append(lines, CartLine{
			Product:  product,
			Quantity: entry.Quantity,
			Total:    product.LineTotal(entry.Quantity),
		})
	}
	return lines, nil
}

// TotalCost sums the entries at current catalog prices. It is recomputed on
// every call so price changes after Add are reflected.
func (c *Cart) TotalCost() (decimal.Decimal, error) {
	lines, err := c.Lines()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total, nil
}

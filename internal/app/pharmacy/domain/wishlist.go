package domain

import "fmt"

// Wishlist is one user's list of saved products.
type Wishlist struct {
	user  string
	items []Product
}

// NewWishlist creates a wishlist for user holding items.
func NewWishlist(user string, items []Product) *Wishlist {
	cp := make([]Product, len(items))
	copy(cp, items)
	return &Wishlist{user: user, items: cp}
}

// User returns the owner of the wishlist.
func (w *Wishlist) User() string {
	return w.user
}

// Items returns a copy of the saved products.
func (w *Wishlist) Items() []Product {
	cp := make([]Product, len(w.items))
	copy(cp, w.items)
	return cp
}

// Len returns the number of saved products.
func (w *Wishlist) Len() int {
	return len(w.items)
}

// Contains reports whether code is on the wishlist.
func (w *Wishlist) Contains(code string) bool {
	return w.indexOf(code) >= 0
}

// Add saves product. A product already on the list is rejected.
func (w *Wishlist) Add(product Product) error {
	if w.Contains(product.Code) {
		return fmt.Errorf("%w: %s", ErrAlreadyWishlisted, product.Name)
	}
	w.items = append(w.items, product)
	return nil
}

// Remove drops the product with code.
func (w *Wishlist) Remove(code string) error {
	i := w.indexOf(code)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotWishlisted, code)
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	return nil
}

func (w *Wishlist) indexOf(code string) int {
	for i, item := range w.items {
		if item.Code == code {
			return i
		}
	}
	return -1
}

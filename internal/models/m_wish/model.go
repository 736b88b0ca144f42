package m_wish

import (
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_product"
)

// Model converts between stored wishlist entries and domain wishlists.
type Model struct {
	products *m_product.Model
}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{products: m_product.NewModel()}
}

// ToDomain builds user's wishlist from the entries tagged with user.
func (m *Model) ToDomain(user string, records []Data) *domain.Wishlist {
	items := make([]domain.Product, 0)
	for _, rec := range records {
		if rec.User == user {
			items = append(items, m.products.ToDomain(rec.Data))
		}
	}
	return domain.NewWishlist(user, items)
}

// Merge replaces the entries of wl's user in records with wl's items and
// keeps every other user's entries in place.
func (m *Model) Merge(records []Data, wl *domain.Wishlist) []Data {
	out := make([]Data, 0, len(records)+wl.Len())
	for _, rec := range records {
		if rec.User != wl.User() {
			out = append(out, rec)
		}
	}
	for _, item := range wl.Items() {
		out = append(out, Data{Data: m.products.FromDomain(item), User: wl.User()})
	}
	return out
}

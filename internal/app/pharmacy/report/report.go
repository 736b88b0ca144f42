// Package report renders catalog, cart, ledger and wishlist views as aligned
// text tables.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
)

// DateFormat is the layout of sale timestamps, shown in local time.
const DateFormat = "2006-01-02 15:04:05"

// Renderer writes reports to w with amounts labelled in currency.
type Renderer struct {
	w        io.Writer
	currency string
}

// NewRenderer creates a Renderer.
func NewRenderer(w io.Writer, currency string) *Renderer {
	return &Renderer{w: w, currency: currency}
}

// Money formats amount with two decimals and the currency label.
func (r *Renderer) Money(amount decimal.Decimal) string {
	if r.currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + r.currency
}

// Sales renders one row per sale followed by the total.
func (r *Renderer) Sales(sales []domain.Sale) error {
	if len(sales) == 0 {
		_, err := fmt.Fprintln(r.w, "No sales recorded.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "#\tDate\tCustomer\tProduct\tQty\tPrice\tPrescription")
	for i, s := range sales {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			i+1,
			s.Timestamp.Local().Format(DateFormat),
			s.CustomerID,
			s.ProductName,
			s.Quantity,
			r.Money(s.Total),
			s.PrescriptionLabel())
	}
	fmt.Fprintf(tw, "\t\t\t\t\t%s\t\n", r.Money(domain.SumTotals(sales)))
	return tw.Flush()
}

// PrescriptionTotals renders the per-prescription sums.
func (r *Renderer) PrescriptionTotals(totals []domain.PrescriptionTotal) error {
	if len(totals) == 0 {
		_, err := fmt.Fprintln(r.w, "No prescription sales recorded.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "Prescription\tSales\tTotal")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.PrescriptionID, t.Sales, r.Money(t.Total))
	}
	return tw.Flush()
}

// Prescriptions renders stored prescriptions, one row per medication line.
func (r *Renderer) Prescriptions(prescriptions []*domain.Prescription) error {
	if len(prescriptions) == 0 {
		_, err := fmt.Fprintln(r.w, "No prescriptions stored.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "Prescription\tDoctor\tCustomer\tDate\tProduct\tQty\tFulfilled")
	for _, p := range prescriptions {
		if len(p.Medications) == 0 {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\t\t\n", p.ID, p.DoctorName, p.CustomerID, p.Date)
			continue
		}
		for _, line := range p.Medications {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				p.ID, p.DoctorName, p.CustomerID, p.Date, line.ProductCode, line.Quantity, yesNo(line.Fulfilled))
		}
	}
	return tw.Flush()
}

// Cart renders the priced cart lines and their total.
func (r *Renderer) Cart(lines []domain.CartLine) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(r.w, "The cart is empty.")
		return err
	}

	total := decimal.Zero
	tw := r.table()
	fmt.Fprintln(tw, "Code\tProduct\tQty\tUnit price\tTotal\tPrescription")
	for _, l := range lines {
		total = total.Add(l.Total)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			l.Product.Code,
			l.Product.Name,
			l.Quantity,
			r.Money(l.Product.Price),
			r.Money(l.Total),
			yesNo(l.Product.RequiresPrescription))
	}
	fmt.Fprintf(tw, "\t\t\t\t%s\t\n", r.Money(total))
	return tw.Flush()
}

// Catalog renders the product listing.
func (r *Renderer) Catalog(products []domain.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(r.w, "No products found.")
		return err
	}

	tw := r.table()
	fmt.Fprintln(tw, "Code\tName\tBrand\tCategory\tQty\tPrice\tPrescription")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.Code, p.Name, p.Brand, p.Category, p.Quantity, r.Money(p.Price), yesNo(p.RequiresPrescription))
	}
	return tw.Flush()
}

// Wishlist renders a user's saved products.
func (r *Renderer) Wishlist(wl *domain.Wishlist) error {
	if wl.Len() == 0 {
		_, err := fmt.Fprintf(r.w, "%s has no saved products.\n", wl.User())
		return err
	}

	tw := r.table()
	fmt.Fprintf(tw, "Wishlist of %s\n", wl.User())
	fmt.Fprintln(tw, "Code\tName\tPrice\tIn stock")
	for _, p := range wl.Items() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Code, p.Name, r.Money(p.Price), p.Quantity)
	}
	return tw.Flush()
}

// Income renders the ledger total.
func (r *Renderer) Income(total decimal.Decimal, sales int) error {
	_, err := fmt.Fprintf(r.w, "Total income: %s over %d sales\n", r.Money(total), sales)
	return err
}

func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

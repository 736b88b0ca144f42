package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/get_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/list_products"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/list_sales"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/prescription_totals"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/top_sales"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/queries/total_income"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/report"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/add_to_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/adjust_stock"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/checkout"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/usecases/remove_from_wishlist"
	"github.com/light-bringer/pharmacy-pos/internal/services"
)

func itemFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:     "item",
		Aliases:  []string{"i"},
		Usage:    "product to buy as `CODE=QTY`, repeatable",
		Required: true,
	}
}

func (r *runner) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "init",
			Usage:  "create the data directory and any missing store",
			Action: r.initStores,
		},
		{
			Name:  "products",
			Usage: "list the catalog",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "category", Usage: "only products in `CATEGORY`"},
				&cli.BoolFlag{Name: "in-stock", Usage: "hide products with no stock"},
			},
			Action: r.listProducts,
		},
		{
			Name:            "restock",
			Usage:           "change the stock of a product by DELTA (negative to write off)",
			ArgsUsage:       "CODE DELTA",
			SkipFlagParsing: true,
			Action:          r.restock,
		},
		{
			Name:   "cart",
			Usage:  "price a cart without checking out",
			Flags:  []cli.Flag{itemFlag()},
			Action: r.showCart,
		},
		{
			Name:  "checkout",
			Usage: "sell the given items to a customer",
			Flags: []cli.Flag{
				itemFlag(),
				&cli.StringFlag{Name: "customer", Aliases: []string{"c"}, Usage: "customer `ID`", Required: true},
				&cli.StringFlag{Name: "prescription", Aliases: []string{"p"}, Usage: "prescription `ID`"},
			},
			Action: r.checkout,
		},
		{
			Name:  "sales",
			Usage: "list recorded sales",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "customer", Usage: "only sales to customer `ID`"},
				&cli.StringFlag{Name: "agent", Usage: "only sales by salesperson `ID`"},
			},
			Action: r.listSales,
		},
		{
			Name:  "top",
			Usage: "list the highest value sales in a period",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "from", Usage: "start `DATE` (YYYY-MM-DD), default 2023-01-02"},
				&cli.StringFlag{Name: "to", Usage: "end `DATE` (YYYY-MM-DD, inclusive), default now"},
				&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "number of sales", Value: top_sales.DefaultLimit},
			},
			Action: r.topSales,
		},
		{
			Name:  "prescriptions",
			Usage: "total sales per prescription",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "show the stored prescriptions instead"},
			},
			Action: r.prescriptionTotals,
		},
		{
			Name:   "income",
			Usage:  "total income over all sales",
			Action: r.income,
		},
		{
			Name:  "wishlist",
			Usage: "manage the logged-in user's wishlist",
			Subcommands: []*cli.Command{
				{Name: "list", Usage: "show the wishlist", Action: r.wishlistList},
				{Name: "add", Usage: "save a product", ArgsUsage: "CODE", Action: r.wishlistAdd},
				{Name: "remove", Usage: "drop a product", ArgsUsage: "CODE", Action: r.wishlistRemove},
			},
		},
	}
}

func (r *runner) renderer(c *cli.Context) *report.Renderer {
	return report.NewRenderer(c.App.Writer, r.cfg.Currency)
}

func (r *runner) initStores(c *cli.Context) error {
	created, err := services.InitStores(c.Context, r.cfg, r.logger)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Fprintf(c.App.Writer, "All stores already exist in %s.\n", r.cfg.DataDir)
		return nil
	}
	for _, name := range created {
		fmt.Fprintf(c.App.Writer, "Created %s store.\n", name)
	}
	return nil
}

func (r *runner) listProducts(c *cli.Context) error {
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	products, err := opts.ListProducts.Execute(c.Context, &list_products.Request{
		Category:    c.String("category"),
		InStockOnly: c.Bool("in-stock"),
	})
	if err != nil {
		return err
	}
	return r.renderer(c).Catalog(products)
}

func (r *runner) restock(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("%w: restock CODE DELTA", errUsage)
	}
	delta, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: DELTA must be a whole number", errUsage)
	}

	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	svc, err := opts.ForSession(c.Context)
	if err != nil {
		return err
	}

	product, err := svc.AdjustStock.Execute(c.Context, &adjust_stock.Request{
		Code:  c.Args().Get(0),
		Delta: delta,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s (%s) now has %d in stock.\n", product.Name, product.Code, product.Quantity)
	return nil
}

// fillCart adds entries to cart. In strict mode the first failure is
// returned; otherwise failed entries are reported to w and skipped.
func fillCart(cart *domain.Cart, entries []domain.CartEntry, strict bool, w io.Writer) error {
	for _, e := range entries {
		if err := cart.Add(e.Code, e.Quantity); err != nil {
			if strict {
				return fmt.Errorf("%s: %w", e.Code, err)
			}
			fmt.Fprintf(w, "Skipped %s: %s\n", e.Code, userMessage(err))
		}
	}
	return nil
}

func (r *runner) showCart(c *cli.Context) error {
	entries, err := parseItems(c.StringSlice("item"))
	if err != nil {
		return err
	}
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}

	cart := opts.NewCart()
	if err := fillCart(cart, entries, false, c.App.Writer); err != nil {
		return err
	}
	lines, err := cart.Lines()
	if err != nil {
		return err
	}
	return r.renderer(c).Cart(lines)
}

func (r *runner) checkout(c *cli.Context) error {
	entries, err := parseItems(c.StringSlice("item"))
	if err != nil {
		return err
	}
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	svc, err := opts.ForSession(c.Context)
	if err != nil {
		return err
	}

	var rx *domain.Prescription
	if id := c.String("prescription"); id != "" {
		if rx, err = opts.Prescriptions.Get(c.Context, id); err != nil {
			return err
		}
	}

	cart := opts.NewCart()
	if err := fillCart(cart, entries, true, c.App.Writer); err != nil {
		return err
	}

	res, err := svc.Checkout.Execute(c.Context, &checkout.Request{
		Cart:         cart,
		CustomerID:   c.String("customer"),
		Prescription: rx,
	})
	if err != nil {
		return err
	}
	if res.Status == checkout.StatusEmptyCart {
		fmt.Fprintln(c.App.Writer, "The cart is empty. Nothing to check out.")
		return nil
	}

	rd := r.renderer(c)
	if err := rd.Sales(res.Sales); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Checkout complete: %d items sold for %s.\n", len(res.Sales), rd.Money(res.Total))
	return nil
}

func (r *runner) listSales(c *cli.Context) error {
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	res, err := opts.ListSales.Execute(c.Context, &list_sales.Request{
		CustomerID:  c.String("customer"),
		Salesperson: c.String("agent"),
	})
	if err != nil {
		return err
	}
	return r.renderer(c).Sales(res.Sales)
}

func (r *runner) topSales(c *cli.Context) error {
	start, err := parseDay(c.String("from"), false)
	if err != nil {
		return err
	}
	end, err := parseDay(c.String("to"), true)
	if err != nil {
		return err
	}
	if c.Int("limit") <= 0 {
		return domain.ErrInvalidTopN
	}

	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	sales, err := opts.TopSales.Execute(c.Context, &top_sales.Request{
		Start: start,
		End:   end,
		N:     c.Int("limit"),
	})
	if err != nil {
		return err
	}
	return r.renderer(c).Sales(sales)
}

func (r *runner) prescriptionTotals(c *cli.Context) error {
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	if c.Bool("list") {
		prescriptions, err := opts.Prescriptions.List(c.Context)
		if err != nil {
			return err
		}
		return r.renderer(c).Prescriptions(prescriptions)
	}

	totals, err := opts.PrescriptionTotals.Execute(c.Context, &prescription_totals.Request{})
	if err != nil {
		return err
	}
	return r.renderer(c).PrescriptionTotals(totals)
}

func (r *runner) income(c *cli.Context) error {
	opts, err := r.services(c.Context)
	if err != nil {
		return err
	}
	res, err := opts.TotalIncome.Execute(c.Context, &total_income.Request{})
	if err != nil {
		return err
	}
	return r.renderer(c).Income(res.Total, res.Sales)
}

func (r *runner) session(c *cli.Context) (*services.SessionServices, error) {
	opts, err := r.services(c.Context)
	if err != nil {
		return nil, err
	}
	return opts.ForSession(c.Context)
}

func (r *runner) wishlistList(c *cli.Context) error {
	svc, err := r.session(c)
	if err != nil {
		return err
	}
	wl, err := svc.GetWishlist.Execute(c.Context, &get_wishlist.Request{})
	if err != nil {
		return err
	}
	return r.renderer(c).Wishlist(wl)
}

func (r *runner) wishlistAdd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: wishlist add CODE", errUsage)
	}
	svc, err := r.session(c)
	if err != nil {
		return err
	}
	wl, err := svc.AddToWishlist.Execute(c.Context, &add_to_wishlist.Request{Code: c.Args().First()})
	if err != nil {
		return err
	}
	return r.renderer(c).Wishlist(wl)
}

func (r *runner) wishlistRemove(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: wishlist remove CODE", errUsage)
	}
	svc, err := r.session(c)
	if err != nil {
		return err
	}
	wl, err := svc.RemoveFromWishlist.Execute(c.Context, &remove_from_wishlist.Request{Code: c.Args().First()})
	if err != nil {
		return err
	}
	return r.renderer(c).Wishlist(wl)
}

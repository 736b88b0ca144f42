package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/repo"
	"github.com/light-bringer/pharmacy-pos/internal/config"
	"github.com/light-bringer/pharmacy-pos/internal/models/m_prescription"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/jsonstore"
)

// Users written by WriteCredentials.
var (
	Salesperson = domain.Session{UserID: "agent1", DisplayName: "Agent One", Role: domain.RoleSalesperson}
	Customer    = domain.Session{UserID: "cust1", DisplayName: "Customer One", Role: domain.RoleCustomer}
)

// NewTestProduct creates an in-stock product priced at price.
func NewTestProduct(code, name, price string, quantity int) domain.Product {
	return domain.Product{
		Code:              code,
		Name:              name,
		Brand:             "Generic",
		Description:       "Test product " + code,
		Quantity:          quantity,
		Price:             decimal.RequireFromString(price),
		DosageInstruction: "As directed",
		Category:          "general",
	}
}

// NewPrescriptionProduct creates a product that can only be sold against a
// prescription.
func NewPrescriptionProduct(code, name, price string, quantity int) domain.Product {
	p := NewTestProduct(code, name, price, quantity)
	p.RequiresPrescription = true
	p.Category = "prescription"
	return p
}

// WriteProducts stores products as the catalog.
func WriteProducts(t *testing.T, cfg config.Config, products ...domain.Product) {
	t.Helper()
	err := repo.NewCatalogRepo(cfg.ProductsFile).Save(context.Background(), products)
	require.NoError(t, err, "failed to write catalog")
}

// WritePrescriptions replaces the prescriptions store with prescriptions.
func WritePrescriptions(t *testing.T, cfg config.Config, prescriptions ...*domain.Prescription) {
	t.Helper()
	model := m_prescription.NewModel()
	records := make([]m_prescription.Data, 0, len(prescriptions))
	for _, p := range prescriptions {
		records = append(records, model.FromDomain(p))
	}
	err := jsonstore.New[m_prescription.Data](cfg.PrescriptionsFile).Save(context.Background(), records)
	require.NoError(t, err, "failed to write prescriptions")
}

// WriteCredentials stores the given users and logs in the first one.
func WriteCredentials(t *testing.T, cfg config.Config, users ...domain.Session) {
	t.Helper()
	if len(users) == 0 {
		users = []domain.Session{Salesperson, Customer}
	}

	var b strings.Builder
	for _, u := range users {
		fmt.Fprintf(&b, "%s:hash:salt:%s:%s:1\n", u.UserID, u.Role, u.DisplayName)
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.CredentialsFile), 0o755))
	require.NoError(t, os.WriteFile(cfg.CredentialsFile, []byte(b.String()), 0o600))
	Login(t, cfg, users[0].UserID)
}

// Login marks userID as the logged-in user.
func Login(t *testing.T, cfg config.Config, userID string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.StatusFile), 0o755))
	require.NoError(t, os.WriteFile(cfg.StatusFile, []byte(userID+"\n"), 0o600))
}

// ReadSales returns the persisted ledger.
func ReadSales(t *testing.T, cfg config.Config) []domain.Sale {
	t.Helper()
	sales, err := repo.NewSalesRepo(cfg.SalesFile).LoadAll(context.Background())
	require.NoError(t, err, "failed to read ledger")
	return sales
}

// ReadProduct returns the persisted catalog entry for code.
func ReadProduct(t *testing.T, cfg config.Config, code string) domain.Product {
	t.Helper()
	products, err := repo.NewCatalogRepo(cfg.ProductsFile).Load(context.Background())
	require.NoError(t, err, "failed to read catalog")
	for _, p := range products {
		if p.Code == code {
			return p
		}
	}
	require.FailNow(t, "product not in catalog", code)
	return domain.Product{}
}

// ReadPrescription returns the persisted prescription with id.
func ReadPrescription(t *testing.T, cfg config.Config, id string) *domain.Prescription {
	t.Helper()
	p, err := repo.NewPrescriptionRepo(cfg.PrescriptionsFile).Get(context.Background(), id)
	require.NoError(t, err, "failed to read prescription")
	return p
}

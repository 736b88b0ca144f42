package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/config"
	"github.com/light-bringer/pharmacy-pos/internal/pkg/clock"
	"github.com/light-bringer/pharmacy-pos/internal/services"
	"github.com/light-bringer/pharmacy-pos/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	*services.ServiceOptions
	*services.SessionServices

	// Infrastructure
	Config config.Config
	Clock  *clock.MockClock
}

// defaultCatalog is the stock every test starts from.
func defaultCatalog() []domain.Product {
	return []domain.Product{
		testutil.NewTestProduct("A", "Paracetamol", "10", 10),
		testutil.NewTestProduct("B", "Vitamin C", "5", 5),
		testutil.NewPrescriptionProduct("RX1", "Amoxicillin", "15", 6),
		testutil.NewPrescriptionProduct("RX2", "Ciprofloxacin", "25", 4),
	}
}

// setupTest writes a fresh data directory and wires every dependency
// against it with the salesperson logged in.
func setupTest(t *testing.T, prescriptions ...*domain.Prescription) *Services {
	t.Helper()

	cfg := testutil.SetupDataDir(t)
	_, err := services.InitStores(context.Background(), cfg, nil)
	require.NoError(t, err)

	testutil.WriteProducts(t, cfg, defaultCatalog()...)
	testutil.WritePrescriptions(t, cfg, prescriptions...)
	testutil.WriteCredentials(t, cfg)

	return wire(t, cfg)
}

// wire builds the services over an existing data directory.
func wire(t *testing.T, cfg config.Config) *Services {
	t.Helper()

	clk := testutil.NewMockClock()
	opts, err := services.NewServiceOptions(context.Background(), cfg, zaptest.NewLogger(t), clk)
	require.NoError(t, err)
	t.Cleanup(opts.Close)

	session, err := opts.ForSession(context.Background())
	require.NoError(t, err)

	return &Services{
		ServiceOptions:  opts,
		SessionServices: session,
		Config:          cfg,
		Clock:           clk,
	}
}

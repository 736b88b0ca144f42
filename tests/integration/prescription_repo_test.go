package integration

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/domain"
	"github.com/light-bringer/pharmacy-pos/internal/app/pharmacy/repo"
	"github.com/light-bringer/pharmacy-pos/tests/testutil"
)

const prescriptionsJSON = `[
    {"DoctorName": "Dr. A", "PrescriptionID": "PHA1", "Medications": [{"ID": "RX", "Name": "Amoxicillin", "Quantity": 2, "ProcessedStatus": false}], "CustomerID": "cust1", "Date": "2024-01-01"},
    {"DoctorName": "Dr. B", "PrescriptionID": "PHA2", "Medications": [{"ID": "RX", "Quantity": 1, "ProcessedStatus": false}], "CustomerID": "cust2", "Date": "2024-01-02"}
]`

func TestPrescriptionRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("missing store", func(t *testing.T) {
		cfg := testutil.SetupDataDir(t)
		_, err := repo.NewPrescriptionRepo(cfg.PrescriptionsFile).Get(ctx, "PHA1")
		assert.ErrorIs(t, err, domain.ErrPrescriptionNotFound)
	})

	t.Run("save replaces in place", func(t *testing.T) {
		cfg := testutil.SetupDataDir(t)
		writeFile(t, cfg.PrescriptionsFile, prescriptionsJSON)
		rxRepo := repo.NewPrescriptionRepo(cfg.PrescriptionsFile)

		rx, err := rxRepo.Get(ctx, "PHA1")
		require.NoError(t, err)
		assert.Equal(t, "Amoxicillin", rx.Medications[0].Name)

		rx.MarkFulfilled(domain.Product{Code: "RX"})
		require.NoError(t, rxRepo.Save(ctx, rx))

		all, err := rxRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "PHA1", all[0].ID)
		assert.True(t, all[0].Fulfilled())
		assert.Equal(t, "2024-01-01", all[0].Date)
		assert.Equal(t, "Amoxicillin", all[0].Medications[0].Name)
		assert.False(t, all[1].Fulfilled())
	})

	t.Run("save into missing store creates nothing", func(t *testing.T) {
		cfg := testutil.SetupDataDir(t)
		rxRepo := repo.NewPrescriptionRepo(cfg.PrescriptionsFile)

		err := rxRepo.Save(ctx, &domain.Prescription{ID: "GHOST", CustomerID: "c"})
		assert.ErrorIs(t, err, domain.ErrPrescriptionNotFound)

		_, err = os.Stat(cfg.PrescriptionsFile)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("save of unknown id leaves store unchanged", func(t *testing.T) {
		cfg := testutil.SetupDataDir(t)
		writeFile(t, cfg.PrescriptionsFile, prescriptionsJSON)
		rxRepo := repo.NewPrescriptionRepo(cfg.PrescriptionsFile)

		err := rxRepo.Save(ctx, &domain.Prescription{ID: "GHOST", CustomerID: "c"})
		assert.ErrorIs(t, err, domain.ErrPrescriptionNotFound)

		all, err := rxRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "PHA1", all[0].ID)
		assert.Equal(t, "PHA2", all[1].ID)

		_, err = rxRepo.Get(ctx, "GHOST")
		assert.ErrorIs(t, err, domain.ErrPrescriptionNotFound)
	})
}

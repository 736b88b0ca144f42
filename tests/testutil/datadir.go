package testutil

import (
	"path/filepath"
	"testing"

	"github.com/light-bringer/pharmacy-pos/internal/config"
)

// SetupDataDir returns a configuration whose stores live in a fresh
// temporary directory. Nothing is created on disk yet.
func SetupDataDir(t *testing.T) config.Config {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	return config.Config{
		Env:               "test",
		DataDir:           dir,
		Currency:          "Rwf",
		LogLevel:          "debug",
		ProductsFile:      filepath.Join(dir, "products.json"),
		SalesFile:         filepath.Join(dir, "sales.json"),
		PrescriptionsFile: filepath.Join(dir, "prescriptions.json"),
		WishlistFile:      filepath.Join(dir, "wishlist.json"),
		CredentialsFile:   filepath.Join(dir, "credentials.txt"),
		StatusFile:        filepath.Join(dir, ".logged_in"),
	}
}

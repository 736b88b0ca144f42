// Package config loads application settings from the environment, optionally
// seeded from dotenv files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Env      string
	DataDir  string
	Currency string
	LogLevel string

	ProductsFile      string
	SalesFile         string
	PrescriptionsFile string
	WishlistFile      string
	CredentialsFile   string
	StatusFile        string
}

// Load reads configuration from environment variables with defaults. The
// given dotenv files are loaded first; with none given and APP_ENV=local,
// .env.local is used. Variables already set in the environment win over
// dotenv values. Missing dotenv files are skipped.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 && getenv("APP_ENV", "development") == "local" {
		envFiles = []string{".env.local"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Config{
		Env:      getenv("APP_ENV", "development"),
		DataDir:  getenv("PHARMACY_DATA_DIR", "data"),
		Currency: getenv("CURRENCY", "Rwf"),
		LogLevel: getenv("LOG_LEVEL", "warn"),
	}
	cfg.ProductsFile = cfg.resolve(getenv("PRODUCTS_FILE", "products.json"))
	cfg.SalesFile = cfg.resolve(getenv("SALES_FILE", "sales.json"))
	cfg.PrescriptionsFile = cfg.resolve(getenv("PRESCRIPTIONS_FILE", "prescriptions.json"))
	cfg.WishlistFile = cfg.resolve(getenv("WISHLIST_FILE", "wishlist.json"))
	cfg.CredentialsFile = cfg.resolve(getenv("CREDENTIALS_FILE", "credentials.txt"))
	cfg.StatusFile = cfg.resolve(getenv("STATUS_FILE", ".logged_in"))
	return cfg, nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// resolve places relative file names under the data directory.
func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kjannette/carprice-stats/internal/models"
)

// SampleListings is the three-car dataset used across tests.
func SampleListings() models.Listings {
	return models.Listings{
		"A": {Year: 2010, Price: 10000},
		"B": {Year: 2015, Price: 20000},
		"C": {Year: 2020, Price: 15000},
	}
}

// WriteFile writes data to name inside a temp dir and returns the path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

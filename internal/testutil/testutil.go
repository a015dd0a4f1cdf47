// Package testutil provides shared test helpers for setting up catalogs.
package testutil

import (
	"testing"

	"github.com/ayush179959/DocuFlow/internal/store"
)

// EmptyCatalog opens an in-memory catalog with no data.
func EmptyCatalog(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// SeededCatalog opens an in-memory catalog loaded with the embedded sample
// templates, products, signatures, and documents.
func SeededCatalog(t *testing.T) *store.DB {
	t.Helper()
	db := EmptyCatalog(t)
	if err := store.Seed(db); err != nil {
		t.Fatal(err)
	}
	return db
}

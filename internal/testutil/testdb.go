package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/store"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore opens a store backed by a fresh in-memory database.
func NewTestStore(t *testing.T, today string) *store.Store {
	t.Helper()
	repo := repository.NewSQLiteStateRepo(NewTestDB(t))
	st, err := store.Open(context.Background(), repo, today)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return st
}

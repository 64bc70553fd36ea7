// Package dbtest opens throwaway, fully migrated databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Emerchan23/sisvendas1-sub004/db"
)

// New returns a migrated database stored under t.TempDir(). It is closed
// when the test ends.
func New(t testing.TB) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return database
}

package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emerchan23/sisvendas1-sub004/db"
	"github.com/Emerchan23/sisvendas1-sub004/db/dbtest"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(filepath.Join(t.TempDir(), "nested", "app.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(ctx, database))
	require.NoError(t, db.Migrate(ctx, database))

	for _, table := range db.Tables {
		var name string
		err := database.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	database := dbtest.New(t)
	ctx := context.Background()

	err := db.InTx(ctx, database, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO clientes (id, nome) VALUES ('c1', 'Ana')")
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM clientes").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestInTxRollsBackOnError(t *testing.T) {
	database := dbtest.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.InTx(ctx, database, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO clientes (id, nome) VALUES ('c1', 'Ana')"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM clientes").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestInTxRollsBackOnPanic(t *testing.T) {
	database := dbtest.New(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = db.InTx(ctx, database, func(tx *sql.Tx) error {
			if _, err := tx.Exec("INSERT INTO clientes (id, nome) VALUES ('c1', 'Ana')"); err != nil {
				return err
			}
			panic("unexpected")
		})
	})

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM clientes").Scan(&n))
	assert.Equal(t, 0, n)
}

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Tables lists every application table, in the order used by backups.
var Tables = []string{
	"clientes",
	"participantes",
	"linhas_venda",
	"despesas_pendentes",
	"acertos",
	"vales",
	"usuarios",
}

// Migrate applies all pending migrations. Safe to call multiple times.
func Migrate(ctx context.Context, db *sql.DB) error {
	slog.Info("running database migrations")

	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	for _, r := range results {
		slog.Debug("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}

	slog.Info("database migrations complete", "applied", len(results))
	return nil
}

package main

//go:generate swag init

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Emerchan23/sisvendas1-sub004/auth"
	"github.com/Emerchan23/sisvendas1-sub004/backup"
	"github.com/Emerchan23/sisvendas1-sub004/config"
	"github.com/Emerchan23/sisvendas1-sub004/db"
	_ "github.com/Emerchan23/sisvendas1-sub004/docs"
	"github.com/Emerchan23/sisvendas1-sub004/handlers"
)

// @title           Sisvendas API
// @version         1.0.0
// @description     Back-office API for sales lines, pending expenses, settlements (acertos), clients, vales and backups.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	cfg := config.Load()

	// Configure structured logging
	level := slog.LevelInfo
	if strings.EqualFold(cfg.LogLevel, "debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(ctx, database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := auth.NewUsers(database).EnsureAdmin(ctx, cfg.AdminUser, cfg.AdminPass); err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	backups := backup.New(database, backup.Config{
		Dir:      cfg.BackupDir,
		Interval: cfg.BackupInterval,
		MaxAge:   cfg.BackupMaxAge,
		MaxCount: cfg.BackupMaxCount,
		Tables:   db.Tables,
	})
	if cfg.BackupEnabled {
		backups.Start()
	}
	defer backups.Stop()

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(handlers.Deps{
			DB:          database,
			Issuer:      auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL),
			Backups:     backups,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

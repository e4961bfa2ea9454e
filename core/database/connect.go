package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

func busyTimeout(cfg Config) int {
	if cfg.BusyTimeoutMS > 0 {
		return cfg.BusyTimeoutMS
	}
	return 5000
}

// DSN builds the sqlite connection string for the configured database file.
func DSN(cfg Config) string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on", cfg.Path, busyTimeout(cfg))
}

// Connect opens the sqlite database, creating its directory if needed, and
// verifies connectivity.
func Connect(cfg Config) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("db dir: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	db, err := sqlx.ConnectContext(ctx, "sqlite3", DSN(cfg))
	took := time.Since(start)
	if err != nil {
		logger.DB.Error("db connect failed",
			slog.String("event", "db.connect"),
			slog.String("path", cfg.Path),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("db connect: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	logger.DB.Info("db connected",
		slog.String("event", "db.connect"),
		slog.String("driver", "sqlite3"),
		slog.String("path", cfg.Path),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return db, nil
}

package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("database connected")
	return db, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id                 BIGINT AUTO_INCREMENT PRIMARY KEY,
		event_id           CHAR(36) NOT NULL UNIQUE,
		length             INT NOT NULL,
		excluded_count     INT NOT NULL,
		strength           TINYINT NOT NULL,
		client_fingerprint CHAR(64) NOT NULL,
		created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_events_strength (strength)
	)`

// EnsureSchema creates the tables the repositories need if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

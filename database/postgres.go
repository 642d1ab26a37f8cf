package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// PostgresService manages the PostgreSQL connection pool
type PostgresService struct {
	db *sql.DB
}

// NewPostgresService creates a connection pool and verifies connectivity
func NewPostgresService(cfg *PostgresConfig) (*PostgresService, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	service := &PostgresService{db: db}

	if err := service.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return service, nil
}

// DB exposes the underlying connection pool
func (s *PostgresService) DB() *sql.DB {
	return s.db
}

// Close closes the connection pool
func (s *PostgresService) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the history table if it does not exist
func (s *PostgresService) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS analysis_runs (
			id               UUID PRIMARY KEY,
			tool             TEXT NOT NULL,
			input_words      INTEGER NOT NULL DEFAULT 0,
			input_sentences  INTEGER NOT NULL DEFAULT 0,
			output_words     INTEGER NOT NULL DEFAULT 0,
			output_sentences INTEGER NOT NULL DEFAULT 0,
			percentages      JSONB,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_runs_created_at
			ON analysis_runs (created_at DESC);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create analysis_runs table: %w", err)
	}
	return nil
}

package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PostgresStore reads settings from a Postgres server's configuration,
// the same place the database-resident original kept them. Settings are
// provisioned with `ALTER DATABASE ... SET pg_summarizer.api_key = ...`
// or `SET pg_summarizer.api_key = ...` per session.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ConnectPostgres opens a pool against url and verifies the connection.
func ConnectPostgres(ctx context.Context, url string) (*PostgresStore, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL is required for the postgres settings backend")
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("could not create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not reach postgres: %w", err)
	}

	log.Info().Msg("Postgres settings store connected")
	return &PostgresStore{pool: pool}, nil
}

// Get reads a setting via current_setting. The second argument suppresses
// the error for unknown settings, so an unset key scans as NULL.
func (s *PostgresStore) Get(ctx context.Context, name string) (string, bool, error) {
	var value *string

	err := s.pool.QueryRow(ctx, "SELECT current_setting($1, true)", name).Scan(&value)
	if err != nil {
		log.Error().
			Err(err).
			Str("setting", name).
			Msg("Failed to read setting from postgres")
		return "", false, fmt.Errorf("failed to get %q setting: %w", name, err)
	}

	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

// Close releases the underlying pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

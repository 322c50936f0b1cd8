// Package store persists computed scenarios: Postgres for the durable record,
// a file-backed snapshot vault for local work, Redis for the hot result cache.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool from DATABASE_URL. Safe to call more
// than once; only the first call connects.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err == nil {
			logrus.WithField("host", config.ConnConfig.Host).Info("database pool ready")
		}
	})
	return err
}

// GetPool returns the pool, nil before InitDB succeeds.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close shuts the pool down.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

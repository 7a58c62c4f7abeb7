package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/petshield/petshield/internal/config"
	ierr "github.com/petshield/petshield/internal/errors"
	"github.com/petshield/petshield/internal/logger"
)

// Client wraps the database handle used by the raw-SQL repositories.
type Client struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewClient opens a connection pool and verifies connectivity.
func NewClient(cfg *config.Configuration, log *logger.Logger) (*Client, error) {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to open database connection").
			Mark(ierr.ErrDatabase)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to reach database").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to postgres", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)
	return &Client{db: db, logger: log}, nil
}

// DB exposes the underlying handle to repositories.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

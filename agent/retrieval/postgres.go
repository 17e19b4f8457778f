package retrieval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Loader supplies catalog entries to the retriever.
type Loader interface {
	LoadEntries(ctx context.Context) ([]Entry, error)
}

type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// PostgresCatalog loads the guitar catalog from Postgres via bun.
type PostgresCatalog struct {
	db *bun.DB
}

var _ Loader = (*PostgresCatalog)(nil)

func NewPostgresCatalog(cfg PostgresConfig) (*PostgresCatalog, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("catalog dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresCatalog{db: db}, nil
}

func (c *PostgresCatalog) LoadEntries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.db.NewSelect().Model(&entries).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load guitar catalog: %w", err)
	}
	return entries, nil
}

func (c *PostgresCatalog) Close() error {
	return c.db.Close()
}

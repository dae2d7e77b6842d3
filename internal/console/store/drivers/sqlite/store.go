package sqlite

import (
	"context"
	"database/sql"

	"github.com/vyaapaarai/console/internal/console/store"

	_ "modernc.org/sqlite"
)

// Store is the sqlite driver for the demo catalog. The console runs it
// against ":memory:" so nothing survives a restart.
type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// An in-memory sqlite database exists per connection. Pin the pool to a
	// single connection so every query sees the migrated schema.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Merchants() store.Merchants { return &merchantsRepo{db: s.db} }
func (s *Store) Customers() store.Customers { return &customersRepo{db: s.db} }
func (s *Store) Products() store.Products   { return &productsRepo{db: s.db} }
func (s *Store) Orders() store.Orders       { return &ordersRepo{db: s.db} }
func (s *Store) Metrics() store.Metrics     { return &metricsRepo{db: s.db} }

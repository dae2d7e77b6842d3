package store

import (
	"context"
	"errors"

	"github.com/vyaapaarai/console/internal/console/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the read-only data access interface for the demo catalog.
// Concrete drivers implement it; the console ships a single sqlite driver
// running against an in-memory database seeded from embedded migrations.
type Store interface {
	Merchants() Merchants
	Customers() Customers
	Products() Products
	Orders() Orders
	Metrics() Metrics

	// ApplyMigrations creates the schema and seeds the demo rows using the
	// embedded migration files.
	ApplyMigrations() error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Merchants interface {
	// ListMerchants returns all merchants ordered by monthly revenue (highest first).
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
}

type Customers interface {
	// ListCustomers returns all customers ordered by lifetime value (highest first).
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type Products interface {
	// ListProducts returns all products ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListLowStock returns active products at or below the given stock level,
	// lowest stock first.
	ListLowStock(ctx context.Context, threshold int64) ([]domain.Product, error)
}

type Orders interface {
	// ListOrders returns all orders, most recent first.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// Summary aggregates the non-refunded order book.
	Summary(ctx context.Context) (domain.RevenueSummary, error)
}

type Metrics interface {
	// ListByScope returns the KPI tiles for a view scope in seed order.
	ListByScope(ctx context.Context, scope string) ([]domain.Metric, error)
}

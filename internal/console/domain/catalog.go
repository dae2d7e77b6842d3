package domain

import "time"

// Catalog records back the dashboard's demo tables and KPI tiles. They are
// read-only: the console seeds them into an in-memory database at startup and
// never writes to them afterwards.

type Merchant struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	OwnerEmail          string `json:"owner_email"`
	Status              string `json:"status"` // active, pending, suspended
	MonthlyRevenueCents int64  `json:"monthly_revenue_cents"`
}

type Customer struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Orders             int64  `json:"orders"`
	LifetimeValueCents int64  `json:"lifetime_value_cents"`
}

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	PriceCents int64  `json:"price_cents"`
	Stock      int64  `json:"stock"`
	Status     string `json:"status"` // active, archived
}

type Order struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	Customer   string    `json:"customer"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"` // pending, shipped, delivered, refunded
	PlacedAt   time.Time `json:"placed_at"`
}

// Metric is a single KPI tile. Scope groups tiles per view, e.g. "admin",
// "merchant" or "merchant-analytics".
type Metric struct {
	Scope string `json:"-"`
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"` // e.g. "+8.2%"
}

// RevenueSummary aggregates the order book for the admin revenue page.
type RevenueSummary struct {
	GrossCents   int64  `json:"gross_cents"`
	OrderCount   int64  `json:"order_count"`
	AverageCents int64  `json:"average_cents"`
	TopMerchant  string `json:"top_merchant,omitempty"`
}

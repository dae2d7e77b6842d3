package sqlite

import (
	"context"
	"database/sql"

	"github.com/vyaapaarai/console/internal/console/domain"
)

type customersRepo struct {
	db *sql.DB
}

func (r *customersRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, orders, lifetime_value_cents
		FROM customers
		ORDER BY lifetime_value_cents DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Orders, &c.LifetimeValueCents); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

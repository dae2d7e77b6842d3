package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vyaapaarai/console/internal/console/domain"
)

type ordersRepo struct {
	db *sql.DB
}

func (r *ordersRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, customer, total_cents, status, placed_at
		FROM orders
		ORDER BY placed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.Customer, &o.TotalCents, &o.Status, &o.PlacedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ordersRepo) Summary(ctx context.Context) (domain.RevenueSummary, error) {
	var s domain.RevenueSummary

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_cents), 0), COUNT(*)
		FROM orders
		WHERE status != 'refunded'`).Scan(&s.GrossCents, &s.OrderCount)
	if err != nil {
		return domain.RevenueSummary{}, err
	}

	if s.OrderCount > 0 {
		s.AverageCents = s.GrossCents / s.OrderCount
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT name
		FROM merchants
		ORDER BY monthly_revenue_cents DESC
		LIMIT 1`).Scan(&s.TopMerchant)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return domain.RevenueSummary{}, err
	}

	return s, nil
}

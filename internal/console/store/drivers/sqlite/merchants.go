package sqlite

import (
	"context"
	"database/sql"

	"github.com/vyaapaarai/console/internal/console/domain"
)

type merchantsRepo struct {
	db *sql.DB
}

func (r *merchantsRepo) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, owner_email, status, monthly_revenue_cents
		FROM merchants
		ORDER BY monthly_revenue_cents DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.OwnerEmail, &m.Status, &m.MonthlyRevenueCents); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

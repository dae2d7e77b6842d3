package sqlite

import (
	"context"
	"database/sql"

	"github.com/vyaapaarai/console/internal/console/domain"
)

type metricsRepo struct {
	db *sql.DB
}

func (r *metricsRepo) ListByScope(ctx context.Context, scope string) ([]domain.Metric, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT scope, label, value, delta
		FROM metrics
		WHERE scope = ?
		ORDER BY id`, scope)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Metric
	for rows.Next() {
		var m domain.Metric
		if err := rows.Scan(&m.Scope, &m.Label, &m.Value, &m.Delta); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

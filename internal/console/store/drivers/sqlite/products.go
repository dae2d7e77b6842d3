package sqlite

import (
	"context"
	"database/sql"

	"github.com/vyaapaarai/console/internal/console/domain"
)

type productsRepo struct {
	db *sql.DB
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.query(ctx, `
		SELECT id, name, sku, price_cents, stock, status
		FROM products
		ORDER BY name`)
}

func (r *productsRepo) ListLowStock(ctx context.Context, threshold int64) ([]domain.Product, error) {
	return r.query(ctx, `
		SELECT id, name, sku, price_cents, stock, status
		FROM products
		WHERE status = 'active' AND stock <= ?
		ORDER BY stock ASC`, threshold)
}

func (r *productsRepo) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.PriceCents, &p.Stock, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

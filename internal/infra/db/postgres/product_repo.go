package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct{ pool *pgxpool.Pool }

func NewProductRepo(pool *pgxpool.Pool) *productRepo {
	return &productRepo{pool: pool}
}

// ListAll returns the full catalog ordered by primary key, so the
// first-eligible-product scan is deterministic.
func (r *productRepo) ListAll(ctx context.Context) ([]*model.Product, error) {
	const q = `
SELECT id, title, rebill_times, variable_qty, first_price_cents, credit_value, created_at
  FROM products
 ORDER BY id;
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("ListAll products: %w", err)
	}
	defer rows.Close()
	var out []*model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.RebillTimes, &p.VariableQty, &p.FirstPriceCents, &p.CreditValue, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	const q = `
INSERT INTO products (id, title, rebill_times, variable_qty, first_price_cents, credit_value, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
  SET title             = EXCLUDED.title,
      rebill_times      = EXCLUDED.rebill_times,
      variable_qty      = EXCLUDED.variable_qty,
      first_price_cents = EXCLUDED.first_price_cents,
      credit_value      = EXCLUDED.credit_value;
`
	_, err := r.pool.Exec(ctx, q,
		p.ID, p.Title, p.RebillTimes, p.VariableQty, p.FirstPriceCents, p.CreditValue, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Save product: %w", err)
	}
	return nil
}

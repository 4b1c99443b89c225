package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.InvoiceRepository = (*invoiceRepo)(nil)

type invoiceRepo struct{ pool *pgxpool.Pool }

func NewInvoiceRepo(pool *pgxpool.Pool) *invoiceRepo {
	return &invoiceRepo{pool: pool}
}

func (r *invoiceRepo) Save(ctx context.Context, tx repository.Tx, inv *model.Invoice) error {
	const invQ = `
INSERT INTO invoices (id, user_id, secure_id, status, total_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6);
`
	if _, err := execSQL(ctx, r.pool, tx, invQ,
		inv.ID, inv.UserID, inv.SecureID, inv.Status, inv.TotalCents, inv.CreatedAt,
	); err != nil {
		return fmt.Errorf("Save invoice: %w", err)
	}

	const itemQ = `
INSERT INTO invoice_items (invoice_id, product_id, description, qty, unit_price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6);
`
	for _, it := range inv.Items {
		if _, err := execSQL(ctx, r.pool, tx, itemQ,
			inv.ID, it.ProductID, it.Description, it.Qty, it.UnitPriceCents, it.TotalCents,
		); err != nil {
			return fmt.Errorf("Save invoice item: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepo) FindBySecureID(ctx context.Context, secureID string) (*model.Invoice, error) {
	const q = `
SELECT id, user_id, secure_id, status, total_cents, created_at
  FROM invoices
 WHERE secure_id = $1;
`
	var inv model.Invoice
	err := r.pool.QueryRow(ctx, q, secureID).Scan(
		&inv.ID, &inv.UserID, &inv.SecureID, &inv.Status, &inv.TotalCents, &inv.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("FindBySecureID: %w", err)
	}

	const itemsQ = `
SELECT product_id, description, qty, unit_price_cents, total_cents
  FROM invoice_items
 WHERE invoice_id = $1
 ORDER BY id;
`
	rows, err := r.pool.Query(ctx, itemsQ, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("FindBySecureID items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it model.InvoiceItem
		if err := rows.Scan(&it.ProductID, &it.Description, &it.Qty, &it.UnitPriceCents, &it.TotalCents); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, it)
	}
	return &inv, rows.Err()
}

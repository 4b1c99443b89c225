package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"membership-credits/internal/domain/model"
	"membership-credits/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.LedgerRepository = (*ledgerRepo)(nil)

type ledgerRepo struct{ pool *pgxpool.Pool }

func NewLedgerRepo(pool *pgxpool.Pool) *ledgerRepo {
	return &ledgerRepo{pool: pool}
}

func (r *ledgerRepo) Balance(ctx context.Context, userID string) (int64, error) {
	const q = `SELECT COALESCE(SUM(value), 0) FROM credit_ledger WHERE user_id = $1;`
	var balance int64
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("Balance: %w", err)
	}
	return balance, nil
}

func (r *ledgerRepo) ListByUser(ctx context.Context, userID string) ([]*model.LedgerEntry, error) {
	const q = `
SELECT id, user_id, value, comment, occurred_at
  FROM credit_ledger
 WHERE user_id = $1
 ORDER BY occurred_at DESC, id DESC;
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer rows.Close()
	var out []*model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Value, &e.Comment, &e.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *ledgerRepo) Add(ctx context.Context, tx repository.Tx, e *model.LedgerEntry) error {
	const q = `
INSERT INTO credit_ledger (user_id, value, comment, occurred_at)
VALUES ($1, $2, $3, $4);
`
	_, err := execSQL(ctx, r.pool, tx, q, e.UserID, e.Value, e.Comment, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("Add ledger entry: %w", err)
	}
	return nil
}

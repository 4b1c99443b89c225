package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"membership-credits/internal/domain"
	"membership-credits/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.SettingsRepository = (*settingsRepo)(nil)

// settingsRepo stores plugin settings in the shared settings table, applying
// the repository.SettingsPrefix namespace to every key.
type settingsRepo struct {
	pool   *pgxpool.Pool
	prefix string
}

func NewSettingsRepo(pool *pgxpool.Pool) *settingsRepo {
	return &settingsRepo{pool: pool, prefix: repository.SettingsPrefix}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM settings WHERE key = $1;`
	var value string
	if err := r.pool.QueryRow(ctx, q, r.prefix+key).Scan(&value); err != nil {
		if err == pgx.ErrNoRows {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("Get setting %s: %w", key, err)
	}
	return value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO settings (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
`
	if _, err := r.pool.Exec(ctx, q, r.prefix+key, value); err != nil {
		return fmt.Errorf("Set setting %s: %w", key, err)
	}
	return nil
}

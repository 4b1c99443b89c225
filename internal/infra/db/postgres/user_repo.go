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
var _ repository.UserRepository = (*userRepo)(nil)

type userRepo struct{ pool *pgxpool.Pool }

func NewUserRepo(pool *pgxpool.Pool) *userRepo {
	return &userRepo{pool: pool}
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
SELECT id, email, name, registered_at
  FROM users
 WHERE id = $1;
`
	var u model.User
	if err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.Name, &u.RegisteredAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("FindByID user: %w", err)
	}
	return &u, nil
}

func (r *userRepo) Save(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, email, name, registered_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
  SET email = EXCLUDED.email,
      name  = EXCLUDED.name;
`
	if _, err := r.pool.Exec(ctx, q, u.ID, u.Email, u.Name, u.RegisteredAt); err != nil {
		return fmt.Errorf("Save user: %w", err)
	}
	return nil
}

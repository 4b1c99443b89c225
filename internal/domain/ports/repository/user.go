package repository

import (
	"context"

	"membership-credits/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, u *model.User) error
}

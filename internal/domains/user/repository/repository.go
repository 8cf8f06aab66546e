package repository

import (
	"context"

	"catalog-backend/internal/domains/user/model"
)

type Repository interface {
	// FindByEmail returns model.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create returns model.ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *model.User) error
}

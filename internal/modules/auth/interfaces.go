package auth

import (
	"context"

	"pgstay/internal/domain"
)

// UserRepositoryInterface defines the user store operations the service needs
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, username, name, mobile, email string) (*domain.User, error)
}

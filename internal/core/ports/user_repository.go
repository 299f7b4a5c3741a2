package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// UserUpdate carries the fields of a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByToken returns domain.ErrUserNotFound when no user holds token.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	// SetToken overwrites the user's session token.
	SetToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}

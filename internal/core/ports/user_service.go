package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// CreateUserInput carries a new account. Password is clear text and is
// hashed by the service before it reaches the store.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) error
	Delete(ctx context.Context, id string) error
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

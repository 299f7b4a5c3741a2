package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// AuthService issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AccessService resolves bearer tokens and evaluates route policies.
type AccessService interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Authorize(ctx context.Context, policy domain.Policy, token string) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// SessionCache keeps token → user snapshots in front of the user store.
//
// Get returns (nil, nil) on a miss, including for a revoked token. Set only
// fills an empty slot: it never overwrites a live entry or a revocation, so a
// snapshot read from the store before Revoke cannot be cached after it.
// Revoke must be called after the store write it reflects.
type SessionCache interface {
	Get(ctx context.Context, token string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Revoke(ctx context.Context, token string) error
}

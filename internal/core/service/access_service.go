package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// AccessService resolves bearer tokens to users and applies route policies.
type AccessService struct {
	repo     ports.UserRepository
	sessions ports.SessionCache
	log      zerolog.Logger
}

func NewAccessService(repo ports.UserRepository, sessions ports.SessionCache, log zerolog.Logger) *AccessService {
	return &AccessService{repo: repo, sessions: sessions, log: log}
}

// Resolve returns the user currently holding token, or domain.ErrUnauthenticated.
func (s *AccessService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	cached, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("session cache lookup failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to cache session")
	}
	return user, nil
}

// Authorize resolves token and checks the user's role against policy.
// The user must exist before its role is looked at.
func (s *AccessService) Authorize(ctx context.Context, policy domain.Policy, token string) (*domain.User, error) {
	user, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if !policy.Allows(user.Role) {
		s.log.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("role not allowed")
		return nil, domain.ErrForbidden
	}
	return user, nil
}

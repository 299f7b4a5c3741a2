package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
	"github.com/carnival/stall-booking/internal/pkg/hash"
)

// AuthService implements login with single-session tokens.
type AuthService struct {
	repo     ports.UserRepository
	sessions ports.SessionCache
	newToken func() string
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionCache, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessions,
		newToken: uuid.NewString,
		log:      log,
	}
}

// Login checks the password against the stored digest and, on success,
// replaces the user's token with a fresh UUIDv4. Any previously issued
// token stops resolving.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnauthenticated
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !hash.Matches(password, user.PasswordHash) {
		s.log.Info().Str("username", username).Msg("login rejected: password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	previous := user.Token
	token := s.newToken()
	if err := s.repo.SetToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("login: store token: %w", err)
	}

	if previous != "" {
		if err := s.sessions.Revoke(ctx, previous); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to revoke previous session")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")
	return token, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
	"github.com/carnival/stall-booking/internal/pkg/hash"
)

type UserService struct {
	repo     ports.UserRepository
	sessions ports.SessionCache
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions ports.SessionCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, sessions: sessions, log: log}
}

// Create stores a new account. The password is hashed first and the account
// starts without a role; roles are granted through Update.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash.Digest(in.Password),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. A new password is hashed; the user's
// cached session is revoked so a role change takes effect on the next request.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	update := ports.UserUpdate{
		Username: in.Username,
		Email:    in.Email,
	}
	if in.Password != nil {
		digest := hash.Digest(*in.Password)
		update.PasswordHash = &digest
	}
	if in.Role != nil {
		role := domain.Role(*in.Role)
		update.Role = &role
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	s.revoke(ctx, current)
	s.log.Info().Str("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.revoke(ctx, current)
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByToken(ctx, token)
}

// IsUsernameAvailable reports whether no account uses username yet.
func (s *UserService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrUserNotFound):
		return true, nil
	default:
		return false, fmt.Errorf("username availability: %w", err)
	}
}

func (s *UserService) revoke(ctx context.Context, u *domain.User) {
	if !u.HasToken() {
		return
	}
	if err := s.sessions.Revoke(ctx, u.Token); err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to revoke session")
	}
}

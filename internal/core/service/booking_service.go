package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// TokenResolver maps a session token to its user.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

type BookingService struct {
	repo   ports.BookingRepository
	tokens TokenResolver
	log    zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, tokens TokenResolver, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, tokens: tokens, log: log}
}

// Create inserts the booking as supplied; only the id is assigned by the store.
func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	b := &domain.Booking{
		Name:      in.Name,
		Business:  in.Business,
		Email:     in.Email,
		Telephone: in.Telephone,
		Type:      in.Type,
		Comments:  in.Comments,
		Status:    in.Status,
		Pitch:     in.Pitch,
		UserID:    in.UserID,
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		if !errors.Is(err, domain.ErrPitchTaken) && !errors.Is(err, domain.ErrInvalidID) {
			s.log.Error().Err(err).Msg("failed to create booking")
		}
		return nil, err
	}

	s.log.Info().Str("booking_id", created.ID).Str("type", created.Type).Msg("booking created")
	return created, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.List(ctx, ports.BookingFilter{})
}

func (s *BookingService) ListByStatus(ctx context.Context, status string) ([]*domain.Booking, error) {
	return s.repo.List(ctx, ports.BookingFilter{Status: status})
}

// ListByOwnerToken returns the bookings owned by the user holding token.
// An unknown token yields domain.ErrUnauthenticated.
func (s *BookingService) ListByOwnerToken(ctx context.Context, token string) ([]*domain.Booking, error) {
	user, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ports.BookingFilter{UserID: user.ID})
}

// Update applies a partial update. Assigning a pitch that another booking
// holds fails with domain.ErrPitchTaken.
func (s *BookingService) Update(ctx context.Context, id string, update ports.BookingUpdate) error {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}

	ev := s.log.Info().Str("booking_id", id)
	if update.Pitch != nil {
		ev = ev.Str("pitch", update.Pitch.String())
	}
	ev.Msg("booking updated")
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

// Proportions maps each stall type to its number of bookings.
func (s *BookingService) Proportions(ctx context.Context) (map[string]int, error) {
	all, err := s.repo.List(ctx, ports.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("proportions: %w", err)
	}
	return domain.Proportions(all), nil
}

// AssignedCount returns how many bookings hold a pitch.
func (s *BookingService) AssignedCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx, ports.BookingFilter{})
	if err != nil {
		return 0, fmt.Errorf("assigned count: %w", err)
	}
	return domain.CountAssigned(all), nil
}

func (s *BookingService) PitchNumbers(ctx context.Context) ([]string, error) {
	all, err := s.repo.List(ctx, ports.BookingFilter{})
	if err != nil {
		return nil, fmt.Errorf("pitch numbers: %w", err)
	}
	return domain.PitchNumbers(all), nil
}

// PitchExists reports whether pitchNo is assigned to some booking. The
// unassigned sentinels never exist.
func (s *BookingService) PitchExists(ctx context.Context, pitchNo string) (bool, error) {
	p := domain.ParsePitch(pitchNo)
	if !p.Assigned() {
		return false, nil
	}
	return s.repo.PitchTaken(ctx, p.Number())
}

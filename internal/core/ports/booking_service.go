package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// CreateBookingInput carries the client-supplied fields of a new booking.
type CreateBookingInput struct {
	Name      string
	Business  string
	Email     string
	Telephone string
	Type      string
	Comments  string
	Status    string
	Pitch     domain.Pitch
	UserID    string
}

// BookingService defines use-case operations for stall bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]*domain.Booking, error)
	// ListByOwnerToken returns the bookings of the user holding token.
	ListByOwnerToken(ctx context.Context, token string) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, update BookingUpdate) error
	Delete(ctx context.Context, id string) error

	Proportions(ctx context.Context) (map[string]int, error)
	AssignedCount(ctx context.Context) (int, error)
	PitchNumbers(ctx context.Context) ([]string, error)
	PitchExists(ctx context.Context, pitchNo string) (bool, error)
}

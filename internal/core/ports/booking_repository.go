package ports

import (
	"context"

	"github.com/carnival/stall-booking/internal/core/domain"
)

// BookingFilter narrows List. Empty fields do not filter.
type BookingFilter struct {
	Status string
	UserID string
}

// BookingUpdate carries the fields of a partial booking update. Nil fields are left untouched.
type BookingUpdate struct {
	Name      *string
	Business  *string
	Email     *string
	Telephone *string
	Type      *string
	Comments  *string
	Status    *string
	Pitch     *domain.Pitch
	UserID    *string
}

// BookingRepository defines persistence operations for stall bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, update BookingUpdate) error
	Delete(ctx context.Context, id string) error
	// PitchTaken reports whether any booking is assigned to pitchNo.
	PitchTaken(ctx context.Context, pitchNo string) (bool, error)
}

package handler

import (
	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

// toPitch maps the wire pitchNo. null, "" and "-1" all mean unassigned.
func toPitch(raw *string) domain.Pitch {
	if raw == nil {
		return domain.Unassigned()
	}
	return domain.ParsePitch(*raw)
}

func toCreateBookingInput(req createBookingRequest) ports.CreateBookingInput {
	return ports.CreateBookingInput{
		Name:      req.Name,
		Business:  req.Business,
		Email:     req.Email,
		Telephone: req.Telephone,
		Type:      req.Type,
		Comments:  req.Comments,
		Status:    req.Status,
		Pitch:     toPitch(req.PitchNo),
		UserID:    req.UserID,
	}
}

// toBookingUpdate keeps absent fields nil. An explicit pitchNo of null cannot
// be told apart from an absent one, so releasing a pitch takes "" or "-1".
func toBookingUpdate(req updateBookingRequest) ports.BookingUpdate {
	u := ports.BookingUpdate{
		Name:      req.Name,
		Business:  req.Business,
		Email:     req.Email,
		Telephone: req.Telephone,
		Type:      req.Type,
		Comments:  req.Comments,
		Status:    req.Status,
		UserID:    req.UserID,
	}
	if req.PitchNo != nil {
		p := toPitch(req.PitchNo)
		u.Pitch = &p
	}
	return u
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Business:  b.Business,
		Email:     b.Email,
		Telephone: b.Telephone,
		Type:      b.Type,
		Comments:  b.Comments,
		Status:    b.Status,
		UserID:    b.UserID,
	}
	if b.Pitch.Assigned() {
		n := b.Pitch.Number()
		resp.PitchNo = &n
	}
	return resp
}

func toBookingResponses(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

func toRegistrationResponse(r domain.RegistrationResult) registrationResponse {
	resp := registrationResponse{OK: r.OK, Message: r.Message}
	for _, fe := range r.Errors {
		resp.Errors = append(resp.Errors, registrationFieldError{Field: fe.Field, Message: fe.Message})
	}
	if len(resp.Errors) > 0 {
		resp.Field = resp.Errors[0].Field
	}
	return resp
}

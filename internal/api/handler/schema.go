package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a mutation that returns no resource.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registrationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registrationFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// registrationResponse reports every failed rule. Field mirrors the first
// failure for clients that only display one message.
type registrationResponse struct {
	OK      bool                     `json:"ok"`
	Message string                   `json:"message"`
	Field   string                   `json:"field,omitempty"`
	Errors  []registrationFieldError `json:"errors,omitempty"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Role     *string `json:"role"`
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// --- Bookings ---

type createBookingRequest struct {
	Name      string  `json:"name"      validate:"required"`
	Business  string  `json:"business"`
	Email     string  `json:"email"     validate:"omitempty,email"`
	Telephone string  `json:"telephone"`
	Type      string  `json:"type"      validate:"required"`
	Comments  string  `json:"comments"`
	Status    string  `json:"status"`
	PitchNo   *string `json:"pitchNo"`
	UserID    string  `json:"userId"`
}

type updateBookingRequest struct {
	Name      *string `json:"name"`
	Business  *string `json:"business"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telephone *string `json:"telephone"`
	Type      *string `json:"type"`
	Comments  *string `json:"comments"`
	Status    *string `json:"status"`
	PitchNo   *string `json:"pitchNo"`
	UserID    *string `json:"userId"`
}

type bookingResponse struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Business  string  `json:"business,omitempty"`
	Email     string  `json:"email,omitempty"`
	Telephone string  `json:"telephone,omitempty"`
	Type      string  `json:"type"`
	Comments  string  `json:"comments,omitempty"`
	Status    string  `json:"status,omitempty"`
	PitchNo   *string `json:"pitchNo"`
	UserID    string  `json:"userId,omitempty"`
}

type assignedResponse struct {
	Assigned int `json:"assigned"`
}

package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

type stubUserService struct {
	createFn      func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	listFn        func(ctx context.Context) ([]*domain.User, error)
	getFn         func(ctx context.Context, id string) (*domain.User, error)
	updateFn      func(ctx context.Context, id string, in ports.UpdateUserInput) error
	deleteFn      func(ctx context.Context, id string) error
	findByTokenFn func(ctx context.Context, token string) (*domain.User, error)
	availableFn   func(ctx context.Context, username string) (bool, error)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}
func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) { return s.listFn(ctx) }
func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	return s.updateFn(ctx, id, in)
}
func (s *stubUserService) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }
func (s *stubUserService) FindByToken(ctx context.Context, token string) (*domain.User, error) {
	return s.findByTokenFn(ctx, token)
}
func (s *stubUserService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return s.availableFn(ctx, username)
}

type stubBookingService struct {
	createFn       func(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error)
	listFn         func(ctx context.Context) ([]*domain.Booking, error)
	byStatusFn     func(ctx context.Context, status string) ([]*domain.Booking, error)
	byOwnerFn      func(ctx context.Context, token string) ([]*domain.Booking, error)
	updateFn       func(ctx context.Context, id string, u ports.BookingUpdate) error
	deleteFn       func(ctx context.Context, id string) error
	proportionsFn  func(ctx context.Context) (map[string]int, error)
	assignedFn     func(ctx context.Context) (int, error)
	pitchNumbersFn func(ctx context.Context) ([]string, error)
	pitchExistsFn  func(ctx context.Context, pitchNo string) (bool, error)
}

func (s *stubBookingService) Create(ctx context.Context, in ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, in)
}
func (s *stubBookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.listFn(ctx)
}
func (s *stubBookingService) ListByStatus(ctx context.Context, status string) ([]*domain.Booking, error) {
	return s.byStatusFn(ctx, status)
}
func (s *stubBookingService) ListByOwnerToken(ctx context.Context, token string) ([]*domain.Booking, error) {
	return s.byOwnerFn(ctx, token)
}
func (s *stubBookingService) Update(ctx context.Context, id string, u ports.BookingUpdate) error {
	return s.updateFn(ctx, id, u)
}
func (s *stubBookingService) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }
func (s *stubBookingService) Proportions(ctx context.Context) (map[string]int, error) {
	return s.proportionsFn(ctx)
}
func (s *stubBookingService) AssignedCount(ctx context.Context) (int, error) {
	return s.assignedFn(ctx)
}
func (s *stubBookingService) PitchNumbers(ctx context.Context) ([]string, error) {
	return s.pitchNumbersFn(ctx)
}
func (s *stubBookingService) PitchExists(ctx context.Context, pitchNo string) (bool, error) {
	return s.pitchExistsFn(ctx, pitchNo)
}

// newTestContext builds an echo context with the production validator. A
// non-empty body is sent as JSON.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpCode returns the status carried by an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

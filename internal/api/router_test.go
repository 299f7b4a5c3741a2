package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// tokenAccess resolves a fixed token table and applies policies for real.
type tokenAccess map[string]*domain.User

func (a tokenAccess) Resolve(_ context.Context, token string) (*domain.User, error) {
	u, ok := a[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}

func (a tokenAccess) Authorize(ctx context.Context, p domain.Policy, token string) (*domain.User, error) {
	u, err := a.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if !p.Allows(u.Role) {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// Embedded interfaces panic on calls a test does not expect.
type routerUsers struct{ ports.UserService }

func (routerUsers) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u1", Username: "admin1", Role: domain.RoleAdmin}}, nil
}

func (routerUsers) Update(context.Context, string, ports.UpdateUserInput) error { return nil }

func (routerUsers) Delete(context.Context, string) error { return nil }

type routerBookings struct{ ports.BookingService }

func (routerBookings) Update(context.Context, string, ports.BookingUpdate) error { return nil }

func (routerBookings) Delete(context.Context, string) error { return nil }

func (routerBookings) List(context.Context) ([]*domain.Booking, error) { return nil, nil }

func (routerBookings) ListByOwnerToken(_ context.Context, token string) ([]*domain.Booking, error) {
	if token != "vendor-token" {
		return nil, domain.ErrUnauthenticated
	}
	return []*domain.Booking{{ID: "b1", Name: "Jo", Type: "food"}}, nil
}

func (routerBookings) PitchNumbers(context.Context) ([]string, error) { return []string{"A1"}, nil }

func (routerBookings) Proportions(context.Context) (map[string]int, error) {
	return map[string]int{"food": 1}, nil
}

func newTestRouter() *echo.Echo {
	return NewRouter(Dependencies{
		Log: zerolog.Nop(),
		Access: tokenAccess{
			"admin-token":     {ID: "u1", Role: domain.RoleAdmin},
			"finance-token":   {ID: "u2", Role: domain.RoleFinance},
			"allocator-token": {ID: "u3", Role: domain.RoleAllocator},
			"vendor-token":    {ID: "u4"},
		},
		Users:      routerUsers{},
		Bookings:   routerBookings{},
		Registerer: prometheus.NewRegistry(),
	})
}

func serve(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PolicyMatrix(t *testing.T) {
	e := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		code   int
	}{
		{"users without token", http.MethodGet, "/users", "", "", http.StatusUnauthorized},
		{"users unknown token", http.MethodGet, "/users", "stale", "", http.StatusUnauthorized},
		{"users as finance", http.MethodGet, "/users", "finance-token", "", http.StatusForbidden},
		{"users as admin", http.MethodGet, "/users", "admin-token", "", http.StatusOK},
		{"bookings as finance", http.MethodGet, "/bookings", "finance-token", "", http.StatusOK},
		{"bookings as role-less vendor", http.MethodGet, "/bookings", "vendor-token", "", http.StatusForbidden},
		{"proportions as allocator", http.MethodGet, "/proportions", "allocator-token", "", http.StatusForbidden},
		{"proportions as finance", http.MethodGet, "/proportions", "finance-token", "", http.StatusOK},
		{"pitch numbers as finance", http.MethodGet, "/bookings/list/pitchnumbers", "finance-token", "", http.StatusForbidden},
		{"pitch numbers as allocator", http.MethodGet, "/bookings/list/pitchnumbers", "allocator-token", "", http.StatusOK},
		{"update booking as allocator", http.MethodPut, "/bookings/abc123", "allocator-token", `{"status":"paid"}`, http.StatusOK},
		{"update booking without token", http.MethodPut, "/bookings/abc123", "", `{"status":"paid"}`, http.StatusUnauthorized},
		{"update booking as finance", http.MethodPut, "/bookings/abc123", "finance-token", `{"status":"paid"}`, http.StatusForbidden},
		{"delete booking as finance", http.MethodDelete, "/bookings/abc123", "finance-token", "", http.StatusForbidden},
		{"delete booking as admin", http.MethodDelete, "/bookings/abc123", "admin-token", "", http.StatusOK},
		{"update user as finance", http.MethodPut, "/users/u2", "finance-token", `{"email":"f@example.com"}`, http.StatusForbidden},
		{"update user as admin", http.MethodPut, "/users/u2", "admin-token", `{"email":"f@example.com"}`, http.StatusOK},
		{"delete user without token", http.MethodDelete, "/users/u2", "", "", http.StatusUnauthorized},
		{"delete user as allocator", http.MethodDelete, "/users/u2", "allocator-token", "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(e, tc.method, tc.path, tc.token, tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d (%s)", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_OwnerTokenRouteIsOpen(t *testing.T) {
	e := newTestRouter()

	if rec := serve(e, http.MethodGet, "/bookings/vendor-token", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/bookings/unknown", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown owner token, got %d", rec.Code)
	}
}

func TestRouter_RegistrationCheckIsOpen(t *testing.T) {
	e := newTestRouter()

	rec := serve(e, http.MethodPost, "/verify/registration", "", `{"username":"abcde","password":"abcdef1"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Username must contain at least 1 digit.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_Liveness(t *testing.T) {
	if rec := serve(newTestRouter(), http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoutes_OnlyListedRoutesAreOpen(t *testing.T) {
	open := map[string]bool{
		http.MethodPost + " /auth":                       true,
		http.MethodPost + " /verify/registration":        true,
		http.MethodPost + " /users":                      true,
		http.MethodPost + " /bookings":                   true,
		http.MethodGet + " /token/:token":                true,
		http.MethodGet + " /bookings/:token":             true,
		http.MethodGet + " /users/isavailable/:username": true,
	}

	for _, r := range routes(Dependencies{Log: zerolog.Nop()}) {
		key := r.method + " " + r.path
		if open[key] != (r.policy == nil) {
			t.Errorf("%s: open=%v but policy set=%v", key, open[key], r.policy != nil)
		}
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

func TestUserHandler_Create_IgnoresRole(t *testing.T) {
	users := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Username != "vendor1" || in.Password != "secret1" || in.Email != "v@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u9", Username: in.Username, Email: in.Email}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"username":"vendor1","password":"secret1","email":"v@example.com","role":"admin"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["_id"] != "u9" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["role"]; ok {
		t.Fatalf("new user must not carry a role: %+v", resp)
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	users := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(users)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"vendor1","email":"not-an-email","password":"x"}`)
	err := h.Create(c)
	if httpCode(err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	users := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	h := NewUserHandler(users)

	c, _ := newTestContext(t, http.MethodPost, "/users", `{"username":"vendor1","password":"secret1"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	users := &stubUserService{
		listFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "admin1", Role: domain.RoleAdmin},
				{ID: "u2", Username: "vendor1"},
			}, nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].Role != "admin" || resp[1].Role != "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Update_GrantsRole(t *testing.T) {
	var got ports.UpdateUserInput
	users := &stubUserService{
		updateFn: func(_ context.Context, id string, in ports.UpdateUserInput) error {
			if id != "u2" {
				t.Fatalf("unexpected id %q", id)
			}
			got = in
			return nil
		},
	}
	h := NewUserHandler(users)

	c, rec := newTestContext(t, http.MethodPut, "/users/u2", `{"role":"allocator"}`)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Role == nil || *got.Role != "allocator" {
		t.Fatalf("role not forwarded: %+v", got)
	}
	if got.Username != nil || got.Password != nil || got.Email != nil {
		t.Fatalf("absent fields must stay nil: %+v", got)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	users := &stubUserService{
		deleteFn: func(context.Context, string) error { return domain.ErrUserNotFound },
	}
	h := NewUserHandler(users)

	c, _ := newTestContext(t, http.MethodDelete, "/users/u404", "")
	c.SetParamNames("id")
	c.SetParamValues("u404")
	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_IsAvailable(t *testing.T) {
	users := &stubUserService{
		availableFn: func(_ context.Context, username string) (bool, error) {
			return username == "fresh1", nil
		},
	}
	h := NewUserHandler(users)

	for name, want := range map[string]string{"fresh1": "true", "taken1": "false"} {
		c, rec := newTestContext(t, http.MethodGet, "/users/isavailable/"+name, "")
		c.SetParamNames("username")
		c.SetParamValues(name)
		if err := h.IsAvailable(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var got bool
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
		}
		if (want == "true") != got {
			t.Fatalf("%s: expected %s, got %v", name, want, got)
		}
	}
}

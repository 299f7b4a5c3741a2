package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carnival/stall-booking/internal/api/metrics"
	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// RegistrationValidator checks a proposed username/password pair.
type RegistrationValidator func(username, password string) domain.RegistrationResult

// AuthHandler serves login and the open identity helpers.
type AuthHandler struct {
	auth     ports.AuthService
	users    ports.UserService
	validate RegistrationValidator
}

func NewAuthHandler(auth ports.AuthService, users ports.UserService, validate RegistrationValidator) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, validate: validate}
}

// Login authenticates a user and returns a fresh session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// VerifyRegistration checks username and password against the registration
// rules without creating anything.
//
// @Summary      Validate registration details
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registrationRequest  true  "Proposed credentials"
// @Success      200   {object}  registrationResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  registrationResponse
// @Router       /verify/registration [post]
func (h *AuthHandler) VerifyRegistration(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result := h.validate(req.Username, req.Password)
	if !result.OK {
		metrics.RegistrationChecksTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusUnprocessableEntity, toRegistrationResponse(result))
	}

	metrics.RegistrationChecksTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, toRegistrationResponse(result))
}

// ByToken returns the user holding a session token.
//
// @Summary      Look up a user by session token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Session token"
// @Success      200    {object}  userResponse
// @Failure      404    {object}  errorResponse
// @Router       /token/{token} [get]
func (h *AuthHandler) ByToken(c echo.Context) error {
	user, err := h.users.FindByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unknown_user"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_password"
	default:
		return "error"
	}
}

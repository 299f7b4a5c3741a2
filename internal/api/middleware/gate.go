package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carnival/stall-booking/internal/api/metrics"
	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
)

// ContextKeyUser is the echo context key holding the authorized *domain.User.
const ContextKeyUser = "user"

var errMalformedAuthorization = errors.New("invalid authorization header")

// Gate evaluates a route's Policy against the user holding the request's
// bearer token. One Gate serves every protected route.
type Gate struct {
	access ports.AccessService
}

func NewGate(access ports.AccessService) *Gate {
	return &Gate{access: access}
}

// Require returns middleware admitting only users whose role is in policy.
// Unknown or missing tokens get 401, disallowed roles get 403.
func (g *Gate) Require(policy domain.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()

			token, err := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.GateDecisionsTotal.WithLabelValues(route, "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error()).SetInternal(domain.ErrUnauthenticated)
			}

			user, err := g.access.Authorize(c.Request().Context(), policy, token)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrUnauthenticated):
				metrics.GateDecisionsTotal.WithLabelValues(route, "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			case errors.Is(err, domain.ErrForbidden):
				metrics.GateDecisionsTotal.WithLabelValues(route, "forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden").SetInternal(err)
			default:
				metrics.GateDecisionsTotal.WithLabelValues(route, "error").Inc()
				return err
			}

			metrics.GateDecisionsTotal.WithLabelValues(route, "allow").Inc()
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errMalformedAuthorization
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errMalformedAuthorization
	}
	return token, nil
}

// UserFromContext returns the user stored by Require.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(ContextKeyUser).(*domain.User)
	return u, ok && u != nil
}

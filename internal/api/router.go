package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carnival/stall-booking/internal/api/handler"
	"github.com/carnival/stall-booking/internal/api/middleware"
	"github.com/carnival/stall-booking/internal/core/domain"
	"github.com/carnival/stall-booking/internal/core/ports"
	"github.com/carnival/stall-booking/internal/core/service"
)

const metricsSubsystem = "carnival"

// Dependencies are the collaborators NewRouter wires into handlers.
type Dependencies struct {
	Log      zerolog.Logger
	Mongo    *mongo.Database
	Redis    *redis.Client // nil when the session cache is disabled
	Auth     ports.AuthService
	Access   ports.AccessService
	Users    ports.UserService
	Bookings ports.BookingService

	// Registerer receives the HTTP request metrics. Defaults to the global
	// Prometheus registerer.
	Registerer prometheus.Registerer
}

// route binds a handler to a method and path. A nil policy leaves the route open.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	policy  *domain.Policy
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	health := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	gate := middleware.NewGate(deps.Access)
	for _, r := range routes(deps) {
		if r.policy == nil {
			e.Add(r.method, r.path, r.handler)
			continue
		}
		e.Add(r.method, r.path, r.handler, gate.Require(*r.policy))
	}

	return e
}

// routes is the API route table.
func routes(deps Dependencies) []route {
	auth := handler.NewAuthHandler(deps.Auth, deps.Users, service.ValidateRegistration)
	users := handler.NewUserHandler(deps.Users)
	bookings := handler.NewBookingHandler(deps.Bookings)

	return []route{
		// Identity
		{http.MethodPost, "/auth", auth.Login, nil},
		{http.MethodPost, "/verify/registration", auth.VerifyRegistration, nil},
		{http.MethodGet, "/token/:token", auth.ByToken, nil},

		// Users
		{http.MethodPost, "/users", users.Create, nil},
		{http.MethodGet, "/users/isavailable/:username", users.IsAvailable, nil},
		{http.MethodGet, "/users", users.List, &usersPolicy},
		{http.MethodGet, "/users/:id", users.Get, &usersPolicy},
		{http.MethodPut, "/users/:id", users.Update, &usersPolicy},
		{http.MethodDelete, "/users/:id", users.Delete, &usersPolicy},

		// Bookings
		{http.MethodPost, "/bookings", bookings.Create, nil},
		{http.MethodGet, "/bookings/:token", bookings.ListByOwnerToken, nil},
		{http.MethodGet, "/bookings", bookings.List, &bookingsReadPolicy},
		{http.MethodGet, "/bookings/filter/:status", bookings.ListByStatus, &bookingsReadPolicy},
		{http.MethodGet, "/bookings/byStatus/:status", bookings.ListByStatus, &bookingsReadPolicy},
		{http.MethodPut, "/bookings/:id", bookings.Update, &bookingsWritePolicy},
		{http.MethodDelete, "/bookings/:id", bookings.Delete, &bookingsWritePolicy},

		// Reports and allocation
		{http.MethodGet, "/proportions", bookings.Proportions, &reportsPolicy},
		{http.MethodGet, "/assigned", bookings.Assigned, &allocationPolicy},
		{http.MethodGet, "/bookings/list/pitchnumbers", bookings.PitchNumbers, &allocationPolicy},
		{http.MethodGet, "/pitchno/:pitchno", bookings.PitchExists, &allocationPolicy},
	}
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

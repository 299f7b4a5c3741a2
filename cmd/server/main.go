package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/carnival/stall-booking/docs" // swagger docs

	"github.com/carnival/stall-booking/internal/api"
	"github.com/carnival/stall-booking/internal/core/ports"
	"github.com/carnival/stall-booking/internal/core/service"
	"github.com/carnival/stall-booking/internal/infrastructure/db/mongo"
	"github.com/carnival/stall-booking/internal/infrastructure/db/redis"
	"github.com/carnival/stall-booking/internal/pkg/config"
	"github.com/carnival/stall-booking/pkg/logger"
)

const indexTimeout = 30 * time.Second

// @title                       Carnival Stall Booking API
// @version                     1.0
// @description                 Users, stall bookings and pitch allocation for the carnival committee.
// @host                        localhost:8080
// @BasePath                    /
// @schemes                     http
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; fall back to its defaults.
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
		Env:    cfg.Env,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		if err := mongo.Disconnect(context.Background(), mongoClient, cfg.ShutdownTimeout); err != nil {
			log.Error().Err(err).Msg("disconnect mongo")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	bookingRepo := mongo.NewBookingRepository(db)
	ensureIndexes(ctx, log, userRepo, bookingRepo)

	rdb, sessions := openSessionCache(ctx, log, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	access := service.NewAccessService(userRepo, sessions, log)
	e := api.NewRouter(api.Dependencies{
		Log:      log,
		Mongo:    db,
		Redis:    rdb,
		Auth:     service.NewAuthService(userRepo, sessions, log),
		Access:   access,
		Users:    service.NewUserService(userRepo, sessions, log),
		Bookings: service.NewBookingService(bookingRepo, access, log),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes creates the unique indexes. Failure is logged rather than
// fatal: the API still serves, but uniqueness is no longer enforced.
func ensureIndexes(ctx context.Context, log zerolog.Logger, repos ...indexer) {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("ensure indexes")
		}
	}
}

// openSessionCache connects to Redis, falling back to a no-op cache when it is
// disabled or unreachable. An unreachable server still yields a client so
// readiness can report it as unhealthy.
func openSessionCache(ctx context.Context, log zerolog.Logger, cfg config.RedisConfig) (*goredis.Client, ports.SessionCache) {
	rcfg := redis.Config{Addr: cfg.Addr, DB: cfg.DB}
	rdb, err := redis.Connect(ctx, rcfg)
	switch {
	case errors.Is(err, redis.ErrDisabled):
		log.Info().Msg("session cache disabled")
		return nil, redis.NopSessionCache{}
	case err != nil:
		log.Warn().Err(err).Msg("session cache unavailable, using the user store only")
		return redis.NewClient(rcfg), redis.NopSessionCache{}
	}
	return rdb, redis.NewSessionCache(rdb, cfg.SessionTTL)
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carnival/stall-booking/internal/core/domain"
)

const defaultSessionTTL = 5 * time.Minute

// revokedMarker occupies the key of a revoked token for one TTL so that a
// concurrent SETNX of a stale snapshot fails.
const revokedMarker = "revoked"

// SessionCache keeps token → user snapshots so the role gate does not hit
// MongoDB on every request.
// Key format: session:<token>, holding either a JSON entry or revokedMarker.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCache{client: client, ttl: ttl}
}

// sessionEntry is the cached shape. The password digest is never cached.
type sessionEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token"`
}

// Get returns the cached user for token, or (nil, nil) on a miss.
func (s *SessionCache) Get(ctx context.Context, token string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	if string(raw) == revokedMarker {
		return nil, nil
	}

	var e sessionEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &domain.User{
		ID:       e.ID,
		Username: e.Username,
		Email:    e.Email,
		Role:     domain.Role(e.Role),
		Token:    e.Token,
	}, nil
}

// Set caches user under its current token for the configured TTL. The write
// is a SETNX: an existing entry or revocation marker wins.
func (s *SessionCache) Set(ctx context.Context, user *domain.User) error {
	if !user.HasToken() {
		return nil
	}
	payload, err := json.Marshal(sessionEntry{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Token:    user.Token,
	})
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	return s.client.SetNX(ctx, s.key(user.Token), payload, s.ttl).Err()
}

// Revoke replaces whatever is cached for token with the revocation marker.
func (s *SessionCache) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Set(ctx, s.key(token), revokedMarker, s.ttl).Err()
}

func (s *SessionCache) key(token string) string {
	return "session:" + token
}

// NopSessionCache is used when Redis is not configured; every lookup misses.
type NopSessionCache struct{}

func (NopSessionCache) Get(context.Context, string) (*domain.User, error) { return nil, nil }
func (NopSessionCache) Set(context.Context, *domain.User) error            { return nil }
func (NopSessionCache) Revoke(context.Context, string) error               { return nil }

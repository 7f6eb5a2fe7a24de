// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const revokedTokenKeyPrefix = "revoked_token:"

// redisRevocationStore keeps revoked token IDs as Redis keys that expire with the token.
type redisRevocationStore struct {
	client *redis.Client
	clock  adapter.Clock
}

// NewRedisRevocationStore creates a revocation store backed by Redis.
func NewRedisRevocationStore(client *redis.Client, clock adapter.Clock) adapter.TokenRevocationStore {
	return &redisRevocationStore{
		client: client,
		clock:  clock,
	}
}

// Revoke stores tokenID with a TTL equal to the token's remaining lifetime.
func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a key exists for tokenID.
func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}

// file: service/token_blocklist.go

package service

import (
	"book-review-api/logger"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "token:revoked:"

// ITokenBlocklist is the revocation store consulted on every
// authenticated request. A jti present in the store means any token
// carrying it must be rejected, even though its signature and expiry
// are still valid.
type ITokenBlocklist interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisTokenBlocklist implements ITokenBlocklist on top of Redis.
// Entries expire after the maximum token lifetime, so the set never
// grows unbounded and never needs manual eviction.
type RedisTokenBlocklist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenBlocklist creates a blocklist whose entries live for
// ttl, which must be at least the longest token lifetime in use.
func NewRedisTokenBlocklist(client *redis.Client, ttl time.Duration) *RedisTokenBlocklist {
	return &RedisTokenBlocklist{client: client, ttl: ttl}
}

// Revoke records the jti as revoked. Revoking twice has the same
// effect as revoking once.
func (b *RedisTokenBlocklist) Revoke(ctx context.Context, jti string) error {
	if err := b.client.Set(ctx, revokedKeyPrefix+jti, "", b.ttl).Err(); err != nil {
		logger.Log.WithError(err).WithField("jti", jti).Error("Failed to add token to the blocklist")
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the jti has been revoked. Callers must
// treat an error as "revoked" (fail-closed): failing open here would
// silently defeat logout whenever Redis is unreachable.
func (b *RedisTokenBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	count, err := b.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		logger.Log.WithError(err).WithField("jti", jti).Error("Failed to query the token blocklist")
		return false, fmt.Errorf("failed to query blocklist: %w", err)
	}
	return count > 0, nil
}

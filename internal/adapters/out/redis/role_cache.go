// Package redis caches role lookups in Redis.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "supplychain:role:"

// RoleCache is a read-through RoleReader. A role never changes once chosen, so only
// assigned roles are cached and a cached entry is never stale. Redis failures fall
// back to the backing reader.
type RoleCache struct {
	client redis.Cmdable
	next   ports.RoleReader
	ttl    time.Duration
	logger *slog.Logger
}

// NewRoleCache wraps next. A zero ttl keeps entries until Redis evicts them.
func NewRoleCache(client redis.Cmdable, next ports.RoleReader, ttl time.Duration, logger *slog.Logger) *RoleCache {
	return &RoleCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "role_cache"),
	}
}

func (c *RoleCache) Get(ctx context.Context, principal kernel.Principal) (*role.Assignment, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}
	key := keyPrefix + principal.String()

	if a, ok := c.lookup(ctx, key, principal); ok {
		return a, nil
	}

	a, err := c.next.Get(ctx, principal)
	if err != nil {
		return nil, err
	}
	if a.IsAssigned() {
		if err = c.client.Set(ctx, key, a.Role().String(), c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to cache role", "principal", principal.String(), "error", err)
		}
	}
	return a, nil
}

func (c *RoleCache) lookup(ctx context.Context, key string, principal kernel.Principal) (*role.Assignment, bool) {
	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "role cache unavailable", "principal", principal.String(), "error", err)
		}
		return nil, false
	}

	r, err := role.Parse(cached)
	if err == nil {
		var a *role.Assignment
		if a, err = role.RestoreAssignment(principal, r); err == nil && a.IsAssigned() {
			return a, true
		}
	}
	c.logger.WarnContext(ctx, "ignoring bad cache entry", "key", key, "value", cached)
	return nil, false
}

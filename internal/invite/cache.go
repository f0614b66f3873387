package invite

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"socialcore/internal/dbmysql"
)

const (
	inviteCodeKeyPrefix = "socialcore:invite:code:"
	inviteCacheTTL      = 10 * time.Minute
)

// Cache is a read-through cache over invite lookup by code, the one
// unauthenticated hot path. A nil *Cache is valid and means caching is
// disabled, so tests and minimal deployments run without Redis.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, code string) (*dbmysql.GroupInvite, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, inviteCodeKeyPrefix+code).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("invite cache read failed", zap.String("code", code), zap.Error(err))
		}
		return nil, false
	}

	var invite dbmysql.GroupInvite
	if err := json.Unmarshal(data, &invite); err != nil {
		zap.L().Warn("invite cache decode failed", zap.String("code", code), zap.Error(err))
		return nil, false
	}
	return &invite, true
}

func (c *Cache) Set(ctx context.Context, invite *dbmysql.GroupInvite) {
	if c == nil {
		return
	}

	data, err := json.Marshal(invite)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, inviteCodeKeyPrefix+invite.Code, data, inviteCacheTTL).Err(); err != nil {
		zap.L().Warn("invite cache write failed", zap.String("code", invite.Code), zap.Error(err))
	}
}

// Invalidate drops the cached entry after an edit or delete.
func (c *Cache) Invalidate(ctx context.Context, code string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, inviteCodeKeyPrefix+code).Err(); err != nil {
		zap.L().Warn("invite cache invalidate failed", zap.String("code", code), zap.Error(err))
	}
}

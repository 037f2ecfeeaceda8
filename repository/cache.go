package repository

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

const revokedTokenPrefix = "PALACE_TOUR:REVOKED_TOKEN:"

// Cache is the optional revocation store: a denylist keyed by token id.
// The token design is stateless, so the denylist only needs to hold an
// entry until the revoked token would have expired on its own.
type Cache interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type cache struct {
	db *goredis.Client
}

func NewCacheRepository(client *goredis.Client) Cache {
	return &cache{db: client}
}

func (c *cache) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	err := c.db.Set(ctx, revokedTokenPrefix+tokenID, time.Now().Unix(), ttl).Err()
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (c *cache) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	result, err := c.db.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		logger.Context(ctx).Error(err)
		return false, err
	}
	return result > 0, nil
}

package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "checks:list:"

// CheckData is what gets cached per check: the entity and its day rows.
// Statistics are not cached — they depend on "today" and are recomputed on
// every read.
type CheckData struct {
	Check dom.Check
	Days  []dom.DayStatus
}

// CheckCache caches a user's check list in Redis.
type CheckCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCheckCache returns a new CheckCache.
func NewCheckCache(rdb *redis.Client, ttl time.Duration) *CheckCache {
	return &CheckCache{rdb: rdb, ttl: ttl}
}

// GetList returns the user's cached check list or nil on a miss.
func (c *CheckCache) GetList(ctx context.Context, userID int64) ([]CheckData, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []CheckData
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the user's check list in cache.
func (c *CheckCache) SetList(ctx context.Context, userID int64, list []CheckData) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate drops the user's cached list (called on every write).
func (c *CheckCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}

func listKey(userID int64) string {
	return keyListPrefix + strconv.FormatInt(userID, 10)
}

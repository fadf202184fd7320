// Package redis caches interest predictions so repeated ad requests do not
// recompute scoring on every page visit. The cache is optional: a nil
// *Cache is safe to call and behaves as a permanent miss.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adpulse/adpulse/internal/domain"
)

const DefaultTTL = 5 * time.Minute

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(url string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

func predictionKey(userID string) string {
	return "prediction:" + userID
}

// GetPrediction returns (nil, nil) on miss. Decode failures are treated as
// a miss too: a stale or corrupt entry must never fail a read path.
func (c *Cache) GetPrediction(ctx context.Context, userID string) (*domain.InterestPrediction, error) {
	if c == nil {
		return nil, nil
	}
	raw, err := c.rdb.Get(ctx, predictionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p domain.InterestPrediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

func (c *Cache) SetPrediction(ctx context.Context, p *domain.InterestPrediction) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, predictionKey(p.UserID), raw, c.ttl).Err()
}

// InvalidatePrediction drops a user's cached prediction; called when new
// interactions arrive so the next read rescores.
func (c *Cache) InvalidatePrediction(ctx context.Context, userID string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, predictionKey(userID)).Err()
}

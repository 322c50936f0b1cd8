package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"acquisition_calc/pkg/core/scenario"
)

const resultCacheTTL = 15 * time.Minute

// ResultCache caches computed scenario batches in Redis keyed by a hash of
// the input, so a dashboard hammering the same sliders does not recompute.
// The computation itself is cheap; the cache mainly keeps response payloads
// identical across reloads, ids and timestamps included.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache connects to Redis at addr. A nil cache is returned on an
// empty addr; callers treat that as cache-off.
func NewResultCache(addr string) *ResultCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable, result cache disabled")
		return nil
	}
	return &ResultCache{client: client}
}

// Key derives the cache key from the canonical JSON of the input.
func Key(input scenario.Input) string {
	payload, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "scenario:" + hex.EncodeToString(sum[:])
}

// Get returns the cached batch for the input, nil on miss or when the cache
// is off.
func (c *ResultCache) Get(ctx context.Context, input scenario.Input) []scenario.Result {
	if c == nil {
		return nil
	}
	key := Key(input)
	if key == "" {
		return nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Debug("result cache read failed")
		}
		return nil
	}
	var results []scenario.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil
	}
	return results
}

// Put stores the batch under the input's key. Failures are logged, never
// surfaced; the cache is advisory.
func (c *ResultCache) Put(ctx context.Context, input scenario.Input, results []scenario.Result) {
	if c == nil {
		return
	}
	key := Key(input)
	if key == "" {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, resultCacheTTL).Err(); err != nil {
		logrus.WithError(err).Debug("result cache write failed")
	}
}

// Invalidate drops the cached batch for an input.
func (c *ResultCache) Invalidate(ctx context.Context, input scenario.Input) error {
	if c == nil {
		return nil
	}
	key := Key(input)
	if key == "" {
		return fmt.Errorf("uncacheable input")
	}
	return c.client.Del(ctx, key).Err()
}

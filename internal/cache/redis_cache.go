package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/yoospeak/internal/metrics"
)

const DefaultAudioTTL = time.Hour

type RedisCache struct {
	rdb        *redis.Client
	log        *logrus.Logger
	defaultTTL time.Duration
}

func NewRedisCache(rdb *redis.Client, log *logrus.Logger, defaultTTL time.Duration) *RedisCache {
	if log == nil {
		log = logrus.New()
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultAudioTTL
	}
	return &RedisCache{rdb: rdb, log: log, defaultTTL: defaultTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	s, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		// data corrupt: treat as miss by deleting
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Put stores audio with ttl; ttl <= 0 uses the configured default.
func (c *RedisCache) Put(ctx context.Context, key string, audio []byte, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.rdb.Set(ctx, key, audio, ttl).Err(); err != nil {
		c.fault("put", key, err)
		return false
	}
	c.log.WithFields(logrus.Fields{"key": key, "bytes": len(audio)}).Debug("cached audio")
	return true
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.fault("get", key, err)
		return nil, false
	}
	return b, true
}

// Delete is idempotent: a missing key still reports true.
func (c *RedisCache) Delete(ctx context.Context, key string) bool {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.fault("delete", key, err)
		return false
	}
	c.log.WithField("key", key).Debug("deleted cached audio")
	return true
}

func (c *RedisCache) Exists(ctx context.Context, key string) bool {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		c.fault("exists", key, err)
		return false
	}
	return n > 0
}

func (c *RedisCache) fault(op, key string, err error) {
	metrics.CacheFaultsTotal.WithLabelValues(op).Inc()
	c.log.WithFields(logrus.Fields{
		"op":          op,
		"key":         key,
		"cache_fault": true,
	}).WithError(err).Error("cache operation failed")
}

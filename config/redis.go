package config

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the client without dialing; go-redis connects lazily.
func NewRedisClient(rc RedisConfig) (*redis.Client, error) {
	val := rc.Addr
	if val == "" {
		val = rc.URL
	}

	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opt), nil
	}

	if val == "" {
		val = rc.Host + ":" + strconv.Itoa(rc.Port)
	}
	return redis.NewClient(&redis.Options{
		Addr:     val,
		DB:       rc.DB,
		Password: rc.Password,
	}), nil
}

func PingRedis(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

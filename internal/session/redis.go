package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/trendify-core/client/internal/core/error"
	logx "github.com/trendify-core/client/pkg/logger"
)

type RedisStore struct {
	rdb     redis.Cmdable
	profile string
	ttl     time.Duration
}

func NewRedisStore(rdb redis.Cmdable, profile string, ttl time.Duration) *RedisStore {
	if profile == "" {
		profile = "default"
	}
	return &RedisStore{rdb: rdb, profile: profile, ttl: ttl}
}

func (r *RedisStore) tokenKey() string {
	return fmt.Sprintf("trendify:session:%s:token", r.profile)
}

func (r *RedisStore) Token(ctx context.Context) (string, error) {
	key := r.tokenKey()
	token, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session token from redis")
		return "", errx.WrapRedis(err)
	}
	return token, nil
}

func (r *RedisStore) SetToken(ctx context.Context, token string) error {
	key := r.tokenKey()
	// a zero ttl keeps the key forever
	if err := r.rdb.Set(ctx, key, token, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to store session token in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	key := r.tokenKey()
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session token from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)

package kvstore

import (
	"context"
	"errors"
	"log/slog"

	"course-cart/internal/infra"

	"github.com/redis/go-redis/v9"
)

const backendRedis = "redis"

// Redis stores values as plain string keys without expiry.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedis(client *redis.Client, logger *slog.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

// DialRedis builds a client and checks the server answers PING.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *Redis) wrap(op, key string, err error) error {
	kind := infra.KindWriteFailed
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = infra.KindTimeout
	case op == "get":
		kind = infra.KindReadFailed
	}
	return infra.WrapStorageErr(r.logger, backendRedis, kind, op+" "+key, err)
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, r.wrap("get", key, err)
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return r.wrap("set", key, err)
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return r.wrap("del", key, err)
	}
	return nil
}

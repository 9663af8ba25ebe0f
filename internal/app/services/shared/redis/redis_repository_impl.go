package redis

import (
	"context"
	"time"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client redis.Cmdable
}

func NewRedisRepository(client redis.Cmdable) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err, key)
	}
	return nil
}

// Set stores value JSON encoded, so strings come back quoted from Get.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err, key)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err, key)
	}

	return data, nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"homeo-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := rdb.Ping(pingCtx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return rdb, nil
}

package config

import (
	"context"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr reports EINVAL on some platforms; nothing is lost.
		_ = b.Logger.Sync()
	}

	return nil
}

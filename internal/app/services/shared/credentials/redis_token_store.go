package credentials

import (
	"context"
	"time"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// redisTokenStore shares one session between processes through Redis.
type redisTokenStore struct {
	RedisRepository contracts.RedisRepository
	StorageKey      string
	TTL             time.Duration
	Log             *zap.Logger
}

func NewRedisTokenStore(redisRepository contracts.RedisRepository, storageKey string, ttl time.Duration, logger *zap.Logger) contracts.TokenStore {
	if storageKey == "" {
		storageKey = constvars.DefaultTokenStorageKey
	}
	return &redisTokenStore{
		RedisRepository: redisRepository,
		StorageKey:      storageKey,
		TTL:             ttl,
		Log:             logger,
	}
}

func (s *redisTokenStore) Token(ctx context.Context) (string, error) {
	raw, err := s.RedisRepository.Get(ctx, s.StorageKey)
	if err != nil {
		s.Log.Error("redisTokenStore.Token error reading token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingStorageKey, s.StorageKey),
			zap.Error(err),
		)
		return "", exceptions.ErrCredentialLookup(err, "redis")
	}
	if raw == "" {
		return "", nil
	}

	// Values written through the repository are JSON strings; anything else is used raw.
	var token string
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return raw, nil
	}
	return token, nil
}

func (s *redisTokenStore) SaveToken(ctx context.Context, token string) error {
	if err := s.RedisRepository.Set(ctx, s.StorageKey, token, s.TTL); err != nil {
		return exceptions.ErrCredentialStore(err, "redis")
	}
	return nil
}

func (s *redisTokenStore) ClearToken(ctx context.Context) error {
	if err := s.RedisRepository.Delete(ctx, s.StorageKey); err != nil {
		return exceptions.ErrCredentialStore(err, "redis")
	}
	return nil
}

package credentials

import (
	"fmt"

	"homeo-service/internal/app/config"
	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// NewCredentialProvider picks the token source named by credentials.driver.
// redisRepository is only required by the redis driver.
func NewCredentialProvider(internalConfig *config.InternalConfig, redisRepository contracts.RedisRepository, logger *zap.Logger) (contracts.CredentialProvider, error) {
	switch internalConfig.Credentials.Driver {
	case constvars.CredentialsDriverNone, "":
		return NewStaticProvider(internalConfig.Credentials.StaticToken), nil
	case constvars.CredentialsDriverJWT:
		return NewJWTSigner(internalConfig, logger)
	default:
		return NewTokenStore(internalConfig, redisRepository, logger)
	}
}

// NewTokenStore returns the writable store behind the file and redis drivers.
func NewTokenStore(internalConfig *config.InternalConfig, redisRepository contracts.RedisRepository, logger *zap.Logger) (contracts.TokenStore, error) {
	storageKey := internalConfig.API.TokenStorageKey
	switch internalConfig.Credentials.Driver {
	case constvars.CredentialsDriverFile:
		return NewFileTokenStore(internalConfig.Credentials.FilePath, storageKey, logger), nil
	case constvars.CredentialsDriverRedis:
		if redisRepository == nil {
			return nil, fmt.Errorf("credentials driver %q needs a redis connection", constvars.CredentialsDriverRedis)
		}
		return NewRedisTokenStore(redisRepository, storageKey, 0, logger), nil
	default:
		return nil, fmt.Errorf("credentials driver %q cannot store tokens", internalConfig.Credentials.Driver)
	}
}

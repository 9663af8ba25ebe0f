package cli

import (
	"context"
	"errors"

	"homeo-service/internal/app/config"
	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/drivers/database"
	"homeo-service/internal/app/drivers/logger"
	minioDriver "homeo-service/internal/app/drivers/storage"
	"homeo-service/internal/app/services/clinic/appointments"
	"homeo-service/internal/app/services/clinic/auth"
	"homeo-service/internal/app/services/clinic/patients"
	"homeo-service/internal/app/services/shared/credentials"
	"homeo-service/internal/app/services/shared/httpclient"
	"homeo-service/internal/app/services/shared/ratelimiter"
	"homeo-service/internal/app/services/shared/redis"
	"homeo-service/internal/app/services/shared/storage"
	"homeo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Dependencies is everything a command may need. TokenStore is nil when the configured
// credentials driver cannot store tokens and Uploader is nil without object storage.
type Dependencies struct {
	InternalConfig *config.InternalConfig
	Logger         *zap.Logger
	HTTPClient     contracts.HTTPClient
	Credentials    contracts.CredentialProvider
	TokenStore     contracts.TokenStore
	Auth           contracts.AuthService
	Patients       contracts.PatientService
	Appointments   contracts.AppointmentService
	Uploader       contracts.ObjectUploader
	Shutdown       func(ctx context.Context) error
}

// Setup builds the dependencies from the config file at configPath (optional).
type Setup func(ctx context.Context, configPath string) (*Dependencies, error)

// NewDependencies wires the drivers and services named by the configuration.
func NewDependencies(ctx context.Context, configPath string) (*Dependencies, error) {
	internalConfig, driverConfig, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, err
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	var redisRepository contracts.RedisRepository
	if internalConfig.Credentials.Driver == constvars.CredentialsDriverRedis {
		bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig)
		if err != nil {
			return nil, err
		}
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	if driverConfig.Minio.Username != "" {
		bootstrap.Minio, err = minioDriver.NewMinio(driverConfig)
		if err != nil {
			bootstrap.Shutdown(ctx)
			return nil, err
		}
	}

	deps, err := buildDependencies(bootstrap, redisRepository)
	if err != nil {
		bootstrap.Shutdown(ctx)
		return nil, err
	}
	return deps, nil
}

func buildDependencies(bootstrap *config.Bootstrap, redisRepository contracts.RedisRepository) (*Dependencies, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	provider, err := credentials.NewCredentialProvider(internalConfig, redisRepository, log)
	if err != nil {
		return nil, err
	}
	tokenStore, _ := provider.(contracts.TokenStore)

	httpClient, err := httpclient.NewAPIClient(
		httpclient.ConfigFromInternal(internalConfig),
		log,
		httpclient.WithCredentials(provider),
		httpclient.WithRateLimiter(ratelimiter.NewRequestLimiter(internalConfig.API.RateLimitPerSecond, internalConfig.API.RateLimitBurst, log)),
	)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		InternalConfig: internalConfig,
		Logger:         log,
		HTTPClient:     httpClient,
		Credentials:    provider,
		TokenStore:     tokenStore,
		Auth:           auth.NewAuthService(httpClient, log),
		Patients:       patients.NewPatientService(httpClient, log),
		Appointments:   appointments.NewAppointmentService(httpClient, log),
		Shutdown:       bootstrap.Shutdown,
	}
	if bootstrap.Minio != nil {
		deps.Uploader = storage.NewObjectUploader(storage.NewMinioStorage(bootstrap.Minio, log), httpClient, log)
	}
	return deps, nil
}

var errNoTokenStore = errors.New("the configured credentials driver cannot store tokens, use the file or redis driver")

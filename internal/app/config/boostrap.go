package config

import (
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "warn"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "clinicctl.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "clinicctl_error.log"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:          utils.GetEnvString("APP_ENV", "development"),
			Version:      utils.GetEnvString("APP_VERSION", "v1.0"),
			OutputFormat: utils.GetEnvString("APP_OUTPUT_FORMAT", "json"),
		},
		API: AppAPI{
			BaseUrl:                  utils.GetEnvString("API_BASE_URL", "http://localhost:8080/api"),
			TimeoutInMilliseconds:    utils.GetEnvInt("API_TIMEOUT_IN_MILLISECONDS", constvars.DefaultRequestTimeoutInMilliseconds),
			RetryAttempts:            utils.GetEnvInt("API_RETRY_ATTEMPTS", constvars.DefaultRetryAttempts),
			RetryDelayInMilliseconds: utils.GetEnvInt("API_RETRY_DELAY_IN_MILLISECONDS", constvars.DefaultRetryDelayInMilliseconds),
			TokenStorageKey:          utils.GetEnvString("API_TOKEN_STORAGE_KEY", constvars.DefaultTokenStorageKey),
			RateLimitPerSecond:       utils.GetEnvFloat("API_RATE_LIMIT_PER_SECOND", 0),
			RateLimitBurst:           utils.GetEnvInt("API_RATE_LIMIT_BURST", 1),
			UserAgent:                utils.GetEnvString("API_USER_AGENT", "clinicctl"),
		},
		Credentials: AppCredentials{
			Driver:      utils.GetEnvString("CREDENTIALS_DRIVER", constvars.CredentialsDriverFile),
			FilePath:    utils.GetEnvString("CREDENTIALS_FILE_PATH", ".clinicctl/storage.json"),
			StaticToken: utils.GetEnvString("CREDENTIALS_STATIC_TOKEN", ""),
		},
		JWT: AppJWT{
			Secret:           utils.GetEnvString("JWT_SECRET", ""),
			Subject:          utils.GetEnvString("JWT_SUBJECT", "clinicctl"),
			Role:             utils.GetEnvString("JWT_ROLE", constvars.ClinicRoleStaff),
			ExpTimeInMinutes: utils.GetEnvInt("JWT_EXP_TIME_IN_MINUTES", 5),
		},
		Storage: AppStorage{
			BucketName: utils.GetEnvString("STORAGE_BUCKET_NAME", "clinic-documents"),
		},
	}
}

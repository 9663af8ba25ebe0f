package config

import (
	"strings"

	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/spf13/viper"
)

const EnvPrefix = "HOMEO"

type fileConfig struct {
	InternalConfig `mapstructure:",squash"`
	DriverConfig   `mapstructure:",squash"`
}

// Load reads an optional YAML/JSON/TOML file on top of the environment defaults.
// Keys can be overridden with HOMEO_<SECTION>_<KEY> variables.
func Load(path string) (*InternalConfig, *DriverConfig, error) {
	v := viper.New()
	for key, value := range defaultSettings(NewInternalConfig(), NewDriverConfig()) {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source := "environment"
	if strings.TrimSpace(path) != "" {
		source = path
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, exceptions.ErrConfigLoad(err, source)
		}
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, exceptions.ErrConfigLoad(err, source)
	}

	internalConfig := cfg.InternalConfig
	driverConfig := cfg.DriverConfig
	if err := Validate(&internalConfig); err != nil {
		return nil, nil, err
	}
	return &internalConfig, &driverConfig, nil
}

func Validate(internalConfig *InternalConfig) error {
	if err := utils.ValidateStruct(internalConfig); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func defaultSettings(internalConfig *InternalConfig, driverConfig *DriverConfig) map[string]any {
	return map[string]any{
		"app.env":           internalConfig.App.Env,
		"app.version":       internalConfig.App.Version,
		"app.output_format": internalConfig.App.OutputFormat,

		"api.base_url":                    internalConfig.API.BaseUrl,
		"api.timeout_in_milliseconds":     internalConfig.API.TimeoutInMilliseconds,
		"api.retry_attempts":              internalConfig.API.RetryAttempts,
		"api.retry_delay_in_milliseconds": internalConfig.API.RetryDelayInMilliseconds,
		"api.token_storage_key":           internalConfig.API.TokenStorageKey,
		"api.rate_limit_per_second":       internalConfig.API.RateLimitPerSecond,
		"api.rate_limit_burst":            internalConfig.API.RateLimitBurst,
		"api.user_agent":                  internalConfig.API.UserAgent,

		"credentials.driver":       internalConfig.Credentials.Driver,
		"credentials.file_path":    internalConfig.Credentials.FilePath,
		"credentials.static_token": internalConfig.Credentials.StaticToken,

		"jwt.secret":              internalConfig.JWT.Secret,
		"jwt.subject":             internalConfig.JWT.Subject,
		"jwt.role":                internalConfig.JWT.Role,
		"jwt.exp_time_in_minutes": internalConfig.JWT.ExpTimeInMinutes,

		"storage.bucket_name": internalConfig.Storage.BucketName,

		"redis.host":     driverConfig.Redis.Host,
		"redis.port":     driverConfig.Redis.Port,
		"redis.password": driverConfig.Redis.Password,
		"redis.db":       driverConfig.Redis.DB,

		"logger.level":                  driverConfig.Logger.Level,
		"logger.output_file_name":       driverConfig.Logger.OutputFileName,
		"logger.output_error_file_name": driverConfig.Logger.OutputErrorFileName,

		"minio.host":     driverConfig.Minio.Host,
		"minio.port":     driverConfig.Minio.Port,
		"minio.username": driverConfig.Minio.Username,
		"minio.password": driverConfig.Minio.Password,
		"minio.use_ssl":  driverConfig.Minio.UseSSL,
	}
}

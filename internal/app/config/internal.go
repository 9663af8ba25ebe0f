package config

type InternalConfig struct {
	App         App            `mapstructure:"app"`
	API         AppAPI         `mapstructure:"api"`
	Credentials AppCredentials `mapstructure:"credentials"`
	JWT         AppJWT         `mapstructure:"jwt"`
	Storage     AppStorage     `mapstructure:"storage"`
}

type App struct {
	Env          string `mapstructure:"env" validate:"required"`
	Version      string `mapstructure:"version"`
	OutputFormat string `mapstructure:"output_format" validate:"oneof=json yaml table"`
}

// AppAPI configures the REST backend the client talks to.
type AppAPI struct {
	BaseUrl                  string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutInMilliseconds    int     `mapstructure:"timeout_in_milliseconds" validate:"gte=1"`
	RetryAttempts            int     `mapstructure:"retry_attempts" validate:"gte=0,lte=10"`
	RetryDelayInMilliseconds int     `mapstructure:"retry_delay_in_milliseconds" validate:"gte=0"`
	TokenStorageKey          string  `mapstructure:"token_storage_key" validate:"required"`
	RateLimitPerSecond       float64 `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	RateLimitBurst           int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
	UserAgent                string  `mapstructure:"user_agent"`
}

type AppCredentials struct {
	// Driver selects where bearer tokens come from: none, file, redis or jwt.
	Driver      string `mapstructure:"driver" validate:"oneof=none file redis jwt"`
	FilePath    string `mapstructure:"file_path"`
	StaticToken string `mapstructure:"static_token"`
}

type AppJWT struct {
	Secret           string `mapstructure:"secret"`
	Subject          string `mapstructure:"subject"`
	Role             string `mapstructure:"role"`
	ExpTimeInMinutes int    `mapstructure:"exp_time_in_minutes" validate:"gte=0"`
}

type AppStorage struct {
	BucketName string `mapstructure:"bucket_name"`
}

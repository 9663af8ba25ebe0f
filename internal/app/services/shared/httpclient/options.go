package httpclient

import (
	"net/http"
	"time"

	"homeo-service/internal/app/config"
	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"
)

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	Retry       RetryPolicy
	UserAgent   string
	Transport   http.RoundTripper
	Credentials contracts.CredentialProvider
	RateLimiter contracts.RateLimiter
}

type Option func(*Config)

func DefaultConfig() Config {
	return Config{
		Timeout: constvars.DefaultRequestTimeoutInMilliseconds * time.Millisecond,
		Retry:   DefaultRetryPolicy(),
	}
}

// ConfigFromInternal maps the api section of the application config onto a client Config.
func ConfigFromInternal(internalConfig *config.InternalConfig) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = internalConfig.API.BaseUrl
	cfg.UserAgent = internalConfig.API.UserAgent
	if internalConfig.API.TimeoutInMilliseconds > 0 {
		cfg.Timeout = time.Duration(internalConfig.API.TimeoutInMilliseconds) * time.Millisecond
	}
	cfg.Retry = RetryPolicy{
		MaxRetries:  internalConfig.API.RetryAttempts,
		Backoff:     LinearBackoff{Step: time.Duration(internalConfig.API.RetryDelayInMilliseconds) * time.Millisecond},
		ShouldRetry: exceptions.IsRetryable,
	}
	return cfg
}

func WithBaseURL(baseURL string) Option {
	return func(c *Config) { c.BaseURL = baseURL }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Config) { c.Retry = policy }
}

func WithUserAgent(userAgent string) Option {
	return func(c *Config) { c.UserAgent = userAgent }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *Config) { c.Transport = rt }
}

func WithCredentials(provider contracts.CredentialProvider) Option {
	return func(c *Config) { c.Credentials = provider }
}

func WithRateLimiter(limiter contracts.RateLimiter) Option {
	return func(c *Config) { c.RateLimiter = limiter }
}

// WithContentType sets the request Content-Type. Only JSON types trigger JSON encoding
// of the body; an empty value behaves like WithoutContentType.
func WithContentType(contentType string) requests.RequestOption {
	return func(o *requests.RequestOptions) {
		o.ContentType = contentType
	}
}

// WithoutContentType sends the body as is and leaves the Content-Type header unset.
func WithoutContentType() requests.RequestOption {
	return WithContentType("")
}

func WithHeader(key, value string) requests.RequestOption {
	return func(o *requests.RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

func buildRequestOptions(opts []requests.RequestOption) requests.RequestOptions {
	options := requests.RequestOptions{ContentType: constvars.MIMEApplicationJSON}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}

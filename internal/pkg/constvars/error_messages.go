package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"url":      "must be a valid URL",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"datetime": "must match the layout %s",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"gt":       true,
	"datetime": true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
}

// Messages surfaced to callers
const (
	ErrClientRequestTimeout     = "Request timeout"
	ErrClientNetworkFailure     = "Network request failed"
	ErrClientHTTPStatusFallback = "Request failed with status %d"
	ErrClientCannotProcess      = "failed to process your request"
	ErrClientNotLoggedIn        = "your session ended, please login again"
)

// Messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevUnsupportedBody         = "unsupported body type %T for content type %q"
	ErrDevBuildMultipartForm      = "failed to build multipart form body"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevRequestTimeout          = "request attempt exceeded its deadline"
	ErrDevReadResponseBody        = "failed to read response body"
	ErrDevHTTPStatus              = "backend responded with status %d"
	ErrDevDecodeResponse          = "failed to decode %s response"
	ErrDevCredentialLookup        = "failed to read credentials from %s"
	ErrDevCredentialStore         = "failed to write credentials to %s"
	ErrDevAuthGenerateToken       = "failed to generate token"
	ErrDevMissingResourceID       = "missing %s identifier"
	ErrDevRedisGet                = "failed to get data from redis with key %s"
	ErrDevRedisSet                = "failed to set data to redis with key %s"
	ErrDevRedisDelete             = "failed to delete data from redis with key %s"
	ErrDevMinioGetObject          = "failed to get object %s from bucket %s"
	ErrDevRateLimiterWait         = "rate limiter wait aborted"
	ErrDevConfigLoad              = "failed to load configuration from %s"
	ErrDevUnsupportedOutputFormat = "unsupported output format %q"
)

package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingURLKey            = "url"
	LoggingEndpointKey       = "endpoint"
	LoggingAttemptKey        = "attempt"
	LoggingDelayKey          = "delay"
	LoggingDurationKey       = "duration"
	LoggingStatusCodeKey     = "status_code"
	LoggingContentTypeKey    = "content_type"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingFileCountKey      = "file_count"
	LoggingStorageKey        = "storage_key"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
)

const (
	LoggingOperationKey = "operation"
	LoggingSuccessKey   = "success"
)

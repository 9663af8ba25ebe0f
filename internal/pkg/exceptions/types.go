package exceptions

import (
	"fmt"
	"homeo-service/internal/pkg/constvars"
)

var (
	// Request building
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindRequest, 0, constvars.ErrClientCannotProcess, constvars.ErrDevCreateHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindEncode, 0, constvars.ErrClientCannotProcess, constvars.ErrDevCannotMarshalJSON)
	}
	ErrUnsupportedBody = func(data any, contentType string) *CustomError {
		return BuildNewCustomError(nil, KindEncode, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevUnsupportedBody, data, contentType))
	}
	ErrBuildMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, KindEncode, 0, constvars.ErrClientCannotProcess, constvars.ErrDevBuildMultipartForm)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, KindRequest, 0, constvars.ErrClientCannotProcess, constvars.ErrDevRateLimiterWait)
	}

	// Transport
	ErrRequestTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTimeout, 0, constvars.ErrClientRequestTimeout, constvars.ErrDevRequestTimeout)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, fmt.Sprintf("%s: %s", constvars.ErrClientNetworkFailure, err.Error()), constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, fmt.Sprintf("%s: %s", constvars.ErrClientNetworkFailure, err.Error()), constvars.ErrDevReadResponseBody)
	}

	// Response
	ErrHTTPStatus = func(statusCode int, message string, body []byte) *CustomError {
		if message == "" {
			message = fmt.Sprintf(constvars.ErrClientHTTPStatusFallback, statusCode)
		}
		customErr := BuildNewCustomError(nil, KindHTTP, statusCode, message, fmt.Sprintf(constvars.ErrDevHTTPStatus, statusCode))
		customErr.Body = body
		return customErr
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, KindDecode, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}

	// Credentials
	ErrCredentialLookup = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, KindCredentials, 0, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevCredentialLookup, source))
	}
	ErrCredentialStore = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, KindCredentials, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevCredentialStore, source))
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindCredentials, 0, constvars.ErrClientCannotProcess, constvars.ErrDevAuthGenerateToken)
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingResourceID = func(resource string) *CustomError {
		message := fmt.Sprintf(constvars.ErrDevMissingResourceID, resource)
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, message, message)
	}
	ErrUnsupportedOutputFormat = func(format string) *CustomError {
		message := fmt.Sprintf(constvars.ErrDevUnsupportedOutputFormat, format)
		return BuildNewCustomError(nil, KindValidation, 0, message, message)
	}
	ErrConfigLoad = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, KindConfig, 0, fmt.Sprintf(constvars.ErrDevConfigLoad, source), fmt.Sprintf(constvars.ErrDevConfigLoad, source))
	}

	// Redis
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisSet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevRedisSet, key))
	}
	ErrRedisDelete = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevRedisDelete, key))
	}

	// Minio
	ErrMinioGetObject = func(err error, bucketName, objectName string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientCannotProcess, fmt.Sprintf(constvars.ErrDevMinioGetObject, objectName, bucketName))
	}
)

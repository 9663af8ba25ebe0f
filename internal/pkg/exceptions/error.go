package exceptions

import (
	"errors"
	"fmt"
	"homeo-service/internal/pkg/constvars"
	"runtime"
)

type Kind string

const (
	KindRequest     Kind = "request"
	KindEncode      Kind = "encode"
	KindDecode      Kind = "decode"
	KindTimeout     Kind = "timeout"
	KindNetwork     Kind = "network"
	KindHTTP        Kind = "http"
	KindCredentials Kind = "credentials"
	KindValidation  Kind = "validation"
	KindStorage     Kind = "storage"
	KindConfig      Kind = "config"
)

// CustomError is the single error value surfaced by the API client. Error returns the
// human readable message only; developer details stay in DevMessage and Location.
type CustomError struct {
	Kind          Kind     `json:"kind"`
	StatusCode    int      `json:"status_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Body          []byte   `json:"-"`
	Location      Location `json:"-"`
	Cause         error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return e.ClientMessage
}

func (e *CustomError) Unwrap() error {
	return e.Cause
}

// Detail renders the developer message together with the place the error was built.
func (e *CustomError) Detail() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		Cause:         err,
	}
}

func AsCustomError(err error) (*CustomError, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	customErr, ok := AsCustomError(err)
	return ok && customErr.Kind == kind
}

func IsTimeout(err error) bool { return IsKind(err, KindTimeout) }

func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

func IsHTTP(err error) bool { return IsKind(err, KindHTTP) }

// IsRetryable reports whether the failure happened before a response was received.
func IsRetryable(err error) bool {
	return IsTimeout(err) || IsNetwork(err)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	customErr, ok := AsCustomError(err)
	if !ok {
		return 0
	}
	return customErr.StatusCode
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type apiClient struct {
	BaseUrl     string
	Log         *zap.Logger
	httpClient  *http.Client
	timeout     time.Duration
	retry       RetryPolicy
	userAgent   string
	credentials contracts.CredentialProvider
	rateLimiter contracts.RateLimiter
	sleep       func(ctx context.Context, d time.Duration) error
}

// call is one logical request. Its body is buffered so that retries resend the same bytes.
type call struct {
	operation   string
	method      string
	endpoint    string
	body        []byte
	contentType string
	headers     map[string]string
}

func NewAPIClient(cfg Config, logger *zap.Logger, opts ...Option) (contracts.HTTPClient, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constvars.DefaultRequestTimeoutInMilliseconds * time.Millisecond
	}
	if cfg.Retry.isZero() {
		cfg.Retry = DefaultRetryPolicy()
	}
	if cfg.Retry.MaxRetries < 0 {
		return nil, exceptions.ErrConfigLoad(errors.New("retry ceiling must not be negative"), "http client options")
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &apiClient{
		BaseUrl:     strings.TrimSpace(cfg.BaseURL),
		Log:         logger,
		httpClient:  &http.Client{Transport: transport},
		timeout:     cfg.Timeout,
		retry:       cfg.Retry,
		userAgent:   cfg.UserAgent,
		credentials: cfg.Credentials,
		rateLimiter: cfg.RateLimiter,
		sleep:       sleep,
	}, nil
}

func (c *apiClient) Get(ctx context.Context, endpoint string, params map[string]any) (*responses.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("apiClient.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	return c.do(ctx, &call{
		operation: "apiClient.Get",
		method:    constvars.MethodGet,
		endpoint:  utils.AppendQuery(endpoint, utils.BuildQueryString(params)),
	})
}

func (c *apiClient) Post(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	return c.send(ctx, "apiClient.Post", constvars.MethodPost, endpoint, data, opts)
}

func (c *apiClient) Put(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	return c.send(ctx, "apiClient.Put", constvars.MethodPut, endpoint, data, opts)
}

func (c *apiClient) Patch(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	return c.send(ctx, "apiClient.Patch", constvars.MethodPatch, endpoint, data, opts)
}

func (c *apiClient) Delete(ctx context.Context, endpoint string) (*responses.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("apiClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	return c.do(ctx, &call{
		operation: "apiClient.Delete",
		method:    constvars.MethodDelete,
		endpoint:  endpoint,
	})
}

func (c *apiClient) UploadFile(ctx context.Context, endpoint string, file requests.FileUpload, additionalData map[string]any, fieldName string) (*responses.Result, error) {
	if fieldName == "" {
		fieldName = constvars.DefaultUploadFieldName
	}
	return c.upload(ctx, "apiClient.UploadFile", endpoint, fieldName, []requests.FileUpload{file}, additionalData)
}

func (c *apiClient) UploadFiles(ctx context.Context, endpoint string, files []requests.FileUpload, additionalData map[string]any) (*responses.Result, error) {
	return c.upload(ctx, "apiClient.UploadFiles", endpoint, constvars.DefaultUploadFilesFieldName, files, additionalData)
}

func (c *apiClient) send(ctx context.Context, operation, method, endpoint string, data any, opts []requests.RequestOption) (*responses.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	options := buildRequestOptions(opts)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.String(constvars.LoggingContentTypeKey, options.ContentType),
	)

	body, err := encodeBody(data, options.ContentType)
	if err != nil {
		c.Log.Error(operation+" error encoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return c.do(ctx, &call{
		operation:   operation,
		method:      method,
		endpoint:    endpoint,
		body:        body,
		contentType: options.ContentType,
		headers:     options.Headers,
	})
}

func (c *apiClient) upload(ctx context.Context, operation, endpoint, fieldName string, files []requests.FileUpload, additionalData map[string]any) (*responses.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingFileCountKey, len(files)),
	)

	body, contentType, err := buildMultipart(fieldName, files, additionalData)
	if err != nil {
		c.Log.Error(operation+" error building multipart body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return c.do(ctx, &call{
		operation:   operation,
		method:      constvars.MethodPost,
		endpoint:    endpoint,
		body:        body,
		contentType: contentType,
	})
}

// do runs the bounded attempt loop. Timeout and network failures are retried while the
// policy allows; everything else, including caller cancellation, returns at once.
func (c *apiClient) do(ctx context.Context, call *call) (*responses.Result, error) {
	requestID := utils.GetRequestID(ctx)
	url := utils.JoinURL(c.BaseUrl, call.endpoint)

	for retries := 0; ; retries++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if c.rateLimiter != nil {
			if err := c.rateLimiter.Wait(ctx); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				return nil, exceptions.ErrRateLimiterWait(err)
			}
		}

		start := time.Now()
		result, err := c.attempt(ctx, call, url, requestID)
		duration := time.Since(start)

		if err == nil {
			statusCode := constvars.StatusNoContent
			responseLength := 0
			if result != nil {
				statusCode = result.StatusCode
				responseLength = len(result.Raw)
			}
			c.Log.Info(call.operation+" succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, call.method),
				zap.String(constvars.LoggingURLKey, url),
				zap.Int(constvars.LoggingAttemptKey, retries+1),
				zap.Int(constvars.LoggingStatusCodeKey, statusCode),
				zap.Int(constvars.LoggingResponseLengthKey, responseLength),
				zap.Duration(constvars.LoggingDurationKey, duration),
			)
			return result, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			c.Log.Info(call.operation+" cancelled by caller",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAttemptKey, retries+1),
			)
			return nil, ctxErr
		}

		if !c.retry.allows(retries, err) {
			c.Log.Error(call.operation+" failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, call.method),
				zap.String(constvars.LoggingURLKey, url),
				zap.Int(constvars.LoggingAttemptKey, retries+1),
				zap.Int(constvars.LoggingStatusCodeKey, exceptions.StatusCode(err)),
				zap.Duration(constvars.LoggingDurationKey, duration),
				zap.Error(err),
			)
			return nil, err
		}

		delay := c.retry.delay(retries + 1)
		c.Log.Warn(call.operation+" attempt failed, retrying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, call.method),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingAttemptKey, retries+1),
			zap.Duration(constvars.LoggingDelayKey, delay),
			zap.Error(err),
		)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// attempt performs a single request under its own deadline. The deadline also covers
// reading the body.
func (c *apiClient) attempt(ctx context.Context, call *call, url, requestID string) (*responses.Result, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if call.body != nil {
		body = bytes.NewReader(call.body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, call.method, url, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if c.userAgent != "" {
		req.Header.Set(constvars.HeaderUserAgent, c.userAgent)
	}
	if call.contentType != "" {
		req.Header.Set(constvars.HeaderContentType, call.contentType)
	}
	for key, value := range call.headers {
		req.Header.Set(key, value)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+" "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, attemptCtx, err, exceptions.ErrSendHTTPRequest)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, attemptCtx, err, exceptions.ErrReadResponseBody)
	}

	return normalizeResponse(resp, respBody)
}

func (c *apiClient) token(ctx context.Context) (string, error) {
	if c.credentials == nil {
		return "", nil
	}
	token, err := c.credentials.Token(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if _, ok := exceptions.AsCustomError(err); ok {
			return "", err
		}
		return "", exceptions.ErrCredentialLookup(err, "credential provider")
	}
	return token, nil
}

// transportError separates caller cancellation, the per-attempt deadline and plain
// network failures.
func transportError(parent, attemptCtx context.Context, err error, networkErr func(error) *exceptions.CustomError) error {
	if parentErr := parent.Err(); parentErr != nil {
		return parentErr
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrRequestTimeout(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrRequestTimeout(err)
	}
	return networkErr(err)
}

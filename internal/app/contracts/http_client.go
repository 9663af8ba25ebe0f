package contracts

import (
	"context"

	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"
)

// HTTPClient is the single request path to the clinic backend. A nil Result with a nil
// error means the backend answered 204 No Content.
type HTTPClient interface {
	Get(ctx context.Context, endpoint string, params map[string]any) (*responses.Result, error)
	Post(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error)
	Put(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error)
	Patch(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error)
	Delete(ctx context.Context, endpoint string) (*responses.Result, error)
	UploadFile(ctx context.Context, endpoint string, file requests.FileUpload, additionalData map[string]any, fieldName string) (*responses.Result, error)
	UploadFiles(ctx context.Context, endpoint string, files []requests.FileUpload, additionalData map[string]any) (*responses.Result, error)
}

type RateLimiter interface {
	Wait(ctx context.Context) error
}

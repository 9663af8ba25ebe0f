package contracts

import (
	"context"

	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"
)

type Storage interface {
	// OpenObject returns the object as an upload part; the caller closes it.
	OpenObject(ctx context.Context, bucketName, objectName string) (*requests.StoredObject, error)
}

type ObjectUploader interface {
	UploadObject(ctx context.Context, endpoint, bucketName, objectName string, additionalData map[string]any, fieldName string) (*responses.Result, error)
}

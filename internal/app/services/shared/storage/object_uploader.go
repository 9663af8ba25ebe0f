package storage

import (
	"context"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// objectUploader forwards a stored object to the backend as a multipart upload.
type objectUploader struct {
	Storage    contracts.Storage
	HTTPClient contracts.HTTPClient
	Log        *zap.Logger
}

func NewObjectUploader(storage contracts.Storage, httpClient contracts.HTTPClient, logger *zap.Logger) contracts.ObjectUploader {
	return &objectUploader{
		Storage:    storage,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (u *objectUploader) UploadObject(ctx context.Context, endpoint, bucketName, objectName string, additionalData map[string]any, fieldName string) (*responses.Result, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	u.Log.Info("objectUploader.UploadObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	object, err := u.Storage.OpenObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	defer object.Close()

	return u.HTTPClient.UploadFile(ctx, endpoint, object.FileUpload, additionalData, fieldName)
}

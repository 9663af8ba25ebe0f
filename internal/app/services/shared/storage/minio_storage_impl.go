package storage

import (
	"context"
	"path"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		Log:         logger,
	}
}

func (m *minioStorage) OpenObject(ctx context.Context, bucketName, objectName string) (*requests.StoredObject, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.OpenObject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, bucketName, objectName)
	}

	// GetObject is lazy; Stat performs the request and surfaces missing objects.
	info, err := object.Stat()
	if err != nil {
		object.Close()
		m.Log.Error("minioStorage.OpenObject error reading object info",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrMinioGetObject(err, bucketName, objectName)
	}

	return &requests.StoredObject{
		FileUpload: requests.FileUpload{
			FileName:    path.Base(objectName),
			ContentType: info.ContentType,
			Content:     object,
		},
		Size:   info.Size,
		Closer: object,
	}, nil
}

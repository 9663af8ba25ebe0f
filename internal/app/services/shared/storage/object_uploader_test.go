package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) OpenObject(ctx context.Context, bucketName, objectName string) (*requests.StoredObject, error) {
	args := m.Called(ctx, bucketName, objectName)
	if obj := args.Get(0); obj != nil {
		return obj.(*requests.StoredObject), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Get(ctx context.Context, endpoint string, params map[string]any) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, params)
	return resultArg(args)
}

func (m *MockHTTPClient) Post(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, data)
	return resultArg(args)
}

func (m *MockHTTPClient) Put(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, data)
	return resultArg(args)
}

func (m *MockHTTPClient) Patch(ctx context.Context, endpoint string, data any, opts ...requests.RequestOption) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, data)
	return resultArg(args)
}

func (m *MockHTTPClient) Delete(ctx context.Context, endpoint string) (*responses.Result, error) {
	args := m.Called(ctx, endpoint)
	return resultArg(args)
}

func (m *MockHTTPClient) UploadFile(ctx context.Context, endpoint string, file requests.FileUpload, additionalData map[string]any, fieldName string) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, file, additionalData, fieldName)
	return resultArg(args)
}

func (m *MockHTTPClient) UploadFiles(ctx context.Context, endpoint string, files []requests.FileUpload, additionalData map[string]any) (*responses.Result, error) {
	args := m.Called(ctx, endpoint, files, additionalData)
	return resultArg(args)
}

func resultArg(args mock.Arguments) (*responses.Result, error) {
	if result := args.Get(0); result != nil {
		return result.(*responses.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type trackingCloser struct{ closed bool }

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestObjectUploader_UploadObject(t *testing.T) {
	closer := &trackingCloser{}
	object := &requests.StoredObject{
		FileUpload: requests.FileUpload{FileName: "scan.pdf", ContentType: "application/pdf", Content: strings.NewReader("%PDF")},
		Size:       4,
		Closer:     closer,
	}

	storage := new(MockStorage)
	storage.On("OpenObject", mock.Anything, "clinic-documents", "2024/scan.pdf").Return(object, nil)

	client := new(MockHTTPClient)
	extra := map[string]any{"note": "archived"}
	client.On("UploadFile", mock.Anything, "/prescriptions/rx-1/attachments", object.FileUpload, extra, "file").
		Return(&responses.Result{StatusCode: 200}, nil)

	uploader := NewObjectUploader(storage, client, zap.NewNop())
	result, err := uploader.UploadObject(context.Background(), "/prescriptions/rx-1/attachments", "clinic-documents", "2024/scan.pdf", extra, "file")
	require.NoError(t, err)
	assert.Equal(t, 200, result.StatusCode)
	assert.True(t, closer.closed)
	storage.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestObjectUploader_OpenFailure(t *testing.T) {
	storage := new(MockStorage)
	storage.On("OpenObject", mock.Anything, "clinic-documents", "missing.pdf").Return(nil, errors.New("NoSuchKey"))
	client := new(MockHTTPClient)

	uploader := NewObjectUploader(storage, client, zap.NewNop())
	_, err := uploader.UploadObject(context.Background(), "/x", "clinic-documents", "missing.pdf", nil, "")
	require.Error(t, err)
	client.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package resource

import (
	"context"
	"strings"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Service implements the CRUD calls shared by every clinic resource on top of one base
// endpoint. Resource specific services embed it.
type Service[T any] struct {
	HTTPClient contracts.HTTPClient
	Log        *zap.Logger
	Name       string
	Endpoint   string
}

func NewService[T any](httpClient contracts.HTTPClient, logger *zap.Logger, name, endpoint string) *Service[T] {
	return &Service[T]{
		HTTPClient: httpClient,
		Log:        logger,
		Name:       name,
		Endpoint:   endpoint,
	}
}

func (s *Service[T]) List(ctx context.Context, params map[string]any) ([]T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	return s.ListAt(ctx, s.Endpoint, params)
}

// ListAt lists entities from any endpoint that returns this resource.
func (s *Service[T]) ListAt(ctx context.Context, endpoint string, params map[string]any) ([]T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	var entities []T
	err := utils.LogOperation(s.Log, s.Name+"Service.List", requestID, func() error {
		result, err := s.HTTPClient.Get(ctx, endpoint, params)
		if err != nil {
			return err
		}
		entities, err = DecodeList[T](result, s.Name)
		return err
	}, zap.String(constvars.LoggingEndpointKey, endpoint))
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (s *Service[T]) FindByID(ctx context.Context, id string) (*T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := s.RequireID(id); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.Get(ctx, s.Path(id), nil)
	if err != nil {
		return nil, err
	}
	return DecodeOne[T](result, s.Name)
}

func (s *Service[T]) Create(ctx context.Context, entity *T) (*T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := s.HTTPClient.Post(ctx, s.Endpoint, entity)
	if err != nil {
		return nil, err
	}
	return DecodeOne[T](result, s.Name)
}

func (s *Service[T]) Update(ctx context.Context, id string, entity *T) (*T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := s.RequireID(id); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.Put(ctx, s.Path(id), entity)
	if err != nil {
		return nil, err
	}
	return DecodeOne[T](result, s.Name)
}

func (s *Service[T]) Patch(ctx context.Context, id string, fields map[string]any) (*T, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.Patch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := s.RequireID(id); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.Patch(ctx, s.Path(id), fields)
	if err != nil {
		return nil, err
	}
	return DecodeOne[T](result, s.Name)
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info(s.Name+"Service.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	if err := s.RequireID(id); err != nil {
		return err
	}

	return utils.LogOperation(s.Log, s.Name+"Service.Delete", requestID, func() error {
		_, err := s.HTTPClient.Delete(ctx, s.Path(id))
		return err
	}, zap.String(constvars.LoggingResourceIDKey, id))
}

// Path builds <endpoint>/<id>/<segments...> with every part escaped.
func (s *Service[T]) Path(id string, segments ...string) string {
	return utils.ResourcePath(s.Endpoint, append([]string{id}, segments...)...)
}

func (s *Service[T]) RequireID(id string) error {
	return RequireID(s.Name, id)
}

// RequireID rejects identifiers that would collapse to the collection endpoint once
// surrounding slashes are trimmed.
func RequireID(name, id string) error {
	if err := utils.ValidateVar(strings.Trim(strings.TrimSpace(id), "/"), "required"); err != nil {
		return exceptions.ErrMissingResourceID(name)
	}
	return nil
}

// WithParam returns a copy of params with key set to value.
func WithParam(params map[string]any, key string, value any) map[string]any {
	merged := make(map[string]any, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged[key] = value
	return merged
}

package advertisements

import (
	"context"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const imageFieldName = "image"

type advertisementService struct {
	*resource.Service[models.Advertisement]
}

func NewAdvertisementService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.AdvertisementService {
	return &advertisementService{
		Service: resource.NewService[models.Advertisement](httpClient, logger, "advertisement", constvars.ResourceAdvertisements),
	}
}

// CreateWithImage sends the advertisement fields and its banner in one multipart request.
func (s *advertisementService) CreateWithImage(ctx context.Context, advertisement *models.Advertisement, image requests.FileUpload) (*models.Advertisement, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("advertisementService.CreateWithImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fields, err := formFields(advertisement)
	if err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.UploadFile(ctx, s.Endpoint, image, fields, imageFieldName)
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.Advertisement](result, s.Name)
}

// formFields flattens the JSON form of v into top-level form values.
func formFields(v any) (map[string]any, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return fields, nil
}

package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/requests"
)

type AdvertisementService interface {
	ResourceService[models.Advertisement]
	CreateWithImage(ctx context.Context, advertisement *models.Advertisement, image requests.FileUpload) (*models.Advertisement, error)
}

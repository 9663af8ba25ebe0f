package staff

import (
	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type staffService struct {
	*resource.Service[models.Staff]
}

func NewStaffService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.StaffService {
	return &staffService{
		Service: resource.NewService[models.Staff](httpClient, logger, "staff", constvars.ResourceStaff),
	}
}

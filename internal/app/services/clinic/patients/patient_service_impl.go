package patients

import (
	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type patientService struct {
	*resource.Service[models.Patient]
}

func NewPatientService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.PatientService {
	return &patientService{
		Service: resource.NewService[models.Patient](httpClient, logger, "patient", constvars.ResourcePatients),
	}
}

package prescriptions

import (
	"context"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type prescriptionService struct {
	*resource.Service[models.Prescription]
}

func NewPrescriptionService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.PrescriptionService {
	return &prescriptionService{
		Service: resource.NewService[models.Prescription](httpClient, logger, "prescription", constvars.ResourcePrescriptions),
	}
}

func (s *prescriptionService) ListByPatient(ctx context.Context, patientID string, params map[string]any) ([]models.Prescription, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, patientID),
	)

	if err := resource.RequireID("patient", patientID); err != nil {
		return nil, err
	}
	return s.ListAt(ctx, s.Endpoint, resource.WithParam(params, constvars.URLQueryParamPatientID, patientID))
}

// UploadAttachment attaches a scan or report to a prescription and returns the updated record.
func (s *prescriptionService) UploadAttachment(ctx context.Context, prescriptionID string, file requests.FileUpload, additionalData map[string]any) (*models.Prescription, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, prescriptionID),
	)

	if err := s.RequireID(prescriptionID); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.UploadFile(ctx, s.Path(prescriptionID, constvars.PathAttachments), file, additionalData, "")
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.Prescription](result, s.Name)
}

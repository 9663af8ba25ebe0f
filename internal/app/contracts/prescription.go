package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/requests"
)

type PrescriptionService interface {
	ResourceService[models.Prescription]
	ListByPatient(ctx context.Context, patientID string, params map[string]any) ([]models.Prescription, error)
	UploadAttachment(ctx context.Context, prescriptionID string, file requests.FileUpload, additionalData map[string]any) (*models.Prescription, error)
}

package contracts

import (
	"context"

	"homeo-service/internal/app/models"
)

type AppointmentService interface {
	ResourceService[models.Appointment]
	Book(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID, reason string) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string, params map[string]any) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string, params map[string]any) ([]models.Appointment, error)
}

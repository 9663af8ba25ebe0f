package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/responses"
)

type PatientService interface {
	ResourceService[models.Patient]
}

type DoctorService interface {
	ResourceService[models.Doctor]
	ListAvailability(ctx context.Context, doctorID, date string) (*responses.DoctorAvailability, error)
}

type StaffService interface {
	ResourceService[models.Staff]
}

package appointments

import (
	"context"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentService struct {
	*resource.Service[models.Appointment]
}

func NewAppointmentService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.AppointmentService {
	return &appointmentService{
		Service: resource.NewService[models.Appointment](httpClient, logger, "appointment", constvars.ResourceAppointments),
	}
}

// Book creates a scheduled appointment after checking the fields the backend needs to
// place it on a calendar.
func (s *appointmentService) Book(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("appointmentService.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if appointment == nil {
		return nil, exceptions.ErrMissingResourceID("appointment")
	}
	if err := resource.RequireID("patient", appointment.PatientID); err != nil {
		return nil, err
	}
	if err := resource.RequireID("doctor", appointment.DoctorID); err != nil {
		return nil, err
	}
	if err := utils.ValidateVar(appointment.Date, "required,datetime=2006-01-02"); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	booking := *appointment
	if booking.Status == "" {
		booking.Status = models.AppointmentStatusScheduled
	}
	return s.Create(ctx, &booking)
}

func (s *appointmentService) Cancel(ctx context.Context, appointmentID, reason string) (*models.Appointment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("appointmentService.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, appointmentID),
	)

	if err := s.RequireID(appointmentID); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.Post(ctx, s.Path(appointmentID, constvars.PathCancel), &requests.CancelAppointment{Reason: reason})
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.Appointment](result, s.Name)
}

func (s *appointmentService) ListByPatient(ctx context.Context, patientID string, params map[string]any) ([]models.Appointment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("appointmentService.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, patientID),
	)

	if err := resource.RequireID("patient", patientID); err != nil {
		return nil, err
	}
	return s.ListAt(ctx, s.Endpoint, resource.WithParam(params, constvars.URLQueryParamPatientID, patientID))
}

func (s *appointmentService) ListByDoctor(ctx context.Context, doctorID string, params map[string]any) ([]models.Appointment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("appointmentService.ListByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, doctorID),
	)

	if err := resource.RequireID("doctor", doctorID); err != nil {
		return nil, err
	}
	return s.ListAt(ctx, s.Endpoint, resource.WithParam(params, constvars.URLQueryParamDoctorID, doctorID))
}

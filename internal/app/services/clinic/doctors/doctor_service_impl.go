package doctors

import (
	"context"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/app/models"
	"homeo-service/internal/app/services/clinic/resource"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorService struct {
	*resource.Service[models.Doctor]
}

func NewDoctorService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.DoctorService {
	return &doctorService{
		Service: resource.NewService[models.Doctor](httpClient, logger, "doctor", constvars.ResourceDoctors),
	}
}

// ListAvailability returns the free slots of a doctor on date (YYYY-MM-DD).
func (s *doctorService) ListAvailability(ctx context.Context, doctorID, date string) (*responses.DoctorAvailability, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("doctorService.ListAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, doctorID),
	)

	if err := s.RequireID(doctorID); err != nil {
		return nil, err
	}
	if err := utils.ValidateVar(date, "omitempty,datetime=2006-01-02"); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	params := map[string]any{}
	if date != "" {
		params[constvars.URLQueryParamDate] = date
	}

	result, err := s.HTTPClient.Get(ctx, s.Path(doctorID, constvars.PathAvailability), params)
	if err != nil {
		return nil, err
	}

	availability, err := resource.DecodeOne[responses.DoctorAvailability](result, "doctor availability")
	if err != nil {
		return nil, err
	}
	if availability == nil {
		availability = &responses.DoctorAvailability{}
	}
	if availability.DoctorID == "" {
		availability.DoctorID = doctorID
	}
	if availability.Date == "" {
		availability.Date = date
	}
	return availability, nil
}

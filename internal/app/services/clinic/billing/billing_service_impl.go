package billing

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

type invoiceService struct {
	*resource.Service[models.Invoice]
}

func NewInvoiceService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.InvoiceService {
	return &invoiceService{
		Service: resource.NewService[models.Invoice](httpClient, logger, "invoice", constvars.ResourceInvoices),
	}
}

func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, request *requests.RecordPayment) (*models.Payment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("invoiceService.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, invoiceID),
	)

	if err := s.RequireID(invoiceID); err != nil {
		return nil, err
	}
	utils.SanitizeRecordPaymentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := s.HTTPClient.Post(ctx, s.Path(invoiceID, constvars.PathPayments), request)
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.Payment](result, "payment")
}

func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("invoiceService.ListPayments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, invoiceID),
	)

	if err := s.RequireID(invoiceID); err != nil {
		return nil, err
	}

	result, err := s.HTTPClient.Get(ctx, s.Path(invoiceID, constvars.PathPayments), nil)
	if err != nil {
		return nil, err
	}
	return resource.DecodeList[models.Payment](result, "payment")
}

type paymentTermsService struct {
	*resource.Service[models.PaymentTerms]
}

func NewPaymentTermsService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.PaymentTermsService {
	return &paymentTermsService{
		Service: resource.NewService[models.PaymentTerms](httpClient, logger, "paymentTerms", constvars.ResourcePaymentTerms),
	}
}

package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/requests"
)

type InvoiceService interface {
	ResourceService[models.Invoice]
	RecordPayment(ctx context.Context, invoiceID string, request *requests.RecordPayment) (*models.Payment, error)
	ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error)
}

type PaymentTermsService interface {
	ResourceService[models.PaymentTerms]
}

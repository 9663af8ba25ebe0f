package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/requests"
)

type SupplierService interface {
	ResourceService[models.Supplier]
}

type PurchaseOrderService interface {
	ResourceService[models.PurchaseOrder]
	ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string, request *requests.ReceivePurchaseOrder) (*models.GoodsReceipt, error)
}

type GoodsReceiptService interface {
	ResourceService[models.GoodsReceipt]
}

package procurement

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

type supplierService struct {
	*resource.Service[models.Supplier]
}

func NewSupplierService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.SupplierService {
	return &supplierService{
		Service: resource.NewService[models.Supplier](httpClient, logger, "supplier", constvars.ResourceSuppliers),
	}
}

type purchaseOrderService struct {
	*resource.Service[models.PurchaseOrder]
}

func NewPurchaseOrderService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.PurchaseOrderService {
	return &purchaseOrderService{
		Service: resource.NewService[models.PurchaseOrder](httpClient, logger, "purchaseOrder", constvars.ResourcePurchaseOrders),
	}
}

// ReceivePurchaseOrder books delivered quantities against an order and returns the
// goods receipt the backend created for them.
func (s *purchaseOrderService) ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string, request *requests.ReceivePurchaseOrder) (*models.GoodsReceipt, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("purchaseOrderService.ReceivePurchaseOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, purchaseOrderID),
	)

	if err := s.RequireID(purchaseOrderID); err != nil {
		return nil, err
	}
	utils.SanitizeReceivePurchaseOrderRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := s.HTTPClient.Post(ctx, s.Path(purchaseOrderID, constvars.PathReceive), request)
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.GoodsReceipt](result, "goodsReceipt")
}

type goodsReceiptService struct {
	*resource.Service[models.GoodsReceipt]
}

func NewGoodsReceiptService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.GoodsReceiptService {
	return &goodsReceiptService{
		Service: resource.NewService[models.GoodsReceipt](httpClient, logger, "goodsReceipt", constvars.ResourceGoodsReceipts),
	}
}

package inventory

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

type inventoryService struct {
	*resource.Service[models.InventoryItem]
}

func NewInventoryService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.InventoryService {
	return &inventoryService{
		Service: resource.NewService[models.InventoryItem](httpClient, logger, "inventory", constvars.ResourceInventory),
	}
}

// AdjustStock applies a signed quantity change, e.g. -2 for dispensed units.
func (s *inventoryService) AdjustStock(ctx context.Context, itemID string, request *requests.AdjustStock) (*models.InventoryItem, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.AdjustStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, itemID),
	)

	if err := s.RequireID(itemID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := s.HTTPClient.Post(ctx, s.Path(itemID, constvars.PathAdjustStock), request)
	if err != nil {
		return nil, err
	}
	return resource.DecodeOne[models.InventoryItem](result, s.Name)
}

// ListLowStock lists items at or below threshold; zero leaves the threshold to the backend.
func (s *inventoryService) ListLowStock(ctx context.Context, threshold int) ([]models.InventoryItem, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("inventoryService.ListLowStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := map[string]any{}
	if threshold > 0 {
		params[constvars.URLQueryParamThreshold] = threshold
	}
	return s.ListAt(ctx, s.Endpoint+constvars.PathLowStock, params)
}

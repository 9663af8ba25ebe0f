package contracts

import (
	"context"

	"homeo-service/internal/app/models"
	"homeo-service/internal/pkg/dto/requests"
)

type InventoryService interface {
	ResourceService[models.InventoryItem]
	AdjustStock(ctx context.Context, itemID string, request *requests.AdjustStock) (*models.InventoryItem, error)
	ListLowStock(ctx context.Context, threshold int) ([]models.InventoryItem, error)
}

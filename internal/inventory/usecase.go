package inventory

import (
	"context"

	"github.com/samaansync/inventory-service/internal/inventory/dto"
	"github.com/samaansync/inventory-service/internal/model"
)

type UseCase interface {
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	GetItem(ctx context.Context, inventoryID, storeID string) (*model.Inventory, error)
	GetStoreStatus(ctx context.Context, storeID string) (*model.Inventory, error)
	CreateRecord(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error)
	UpdateQuantity(ctx context.Context, inventoryID string, quantity int) (*model.Inventory, error)
}

package inventory

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("inventory record already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.Inventory, error)
	FindByInventoryID(ctx context.Context, inventoryID, storeID string) (*model.Inventory, error)
	FindByStore(ctx context.Context, storeID string) (*model.Inventory, error)
	FindByPair(ctx context.Context, storeID, productID string) (*model.Inventory, error)
	Create(ctx context.Context, inv *model.Inventory) error
	UpdateQuantity(ctx context.Context, inventoryID string, quantity int) (*model.Inventory, error)
}

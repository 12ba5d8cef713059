package storeproduct

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("store-product relationship already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.StoreProduct, error)
	FindByPair(ctx context.Context, storeID, productID string) (*model.StoreProduct, error)
	Create(ctx context.Context, sp *model.StoreProduct) error
	Update(ctx context.Context, sp *model.StoreProduct) (*model.StoreProduct, error)
}

package storeproduct

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/storeproduct/dto"
)

type UseCase interface {
	ListStoreProducts(ctx context.Context) ([]model.StoreProduct, error)
	GetStoreProduct(ctx context.Context, storeID, productID string) (*model.StoreProduct, error)
	CreateStoreProduct(ctx context.Context, input *dto.StoreProductInput) (*model.StoreProduct, error)
	UpdateStoreProduct(ctx context.Context, input *dto.StoreProductInput) (*model.StoreProduct, error)
}

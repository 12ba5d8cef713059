package store

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/store/dto"
)

type UseCase interface {
	ListStores(ctx context.Context) ([]model.Store, error)
	GetStore(ctx context.Context, storeID string) (*model.Store, error)
	CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error)
	UpdateStore(ctx context.Context, input *dto.UpdateStoreInput) (*model.Store, error)
}

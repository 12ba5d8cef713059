package usecase

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/store"
	"github.com/samaansync/inventory-service/internal/store/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
)

type storeUseCase struct {
	repo   store.Repository
	logger logger.ZapLogger
}

func NewStoreUseCase(repo store.Repository, log logger.ZapLogger) store.UseCase {
	return &storeUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *storeUseCase) ListStores(ctx context.Context) ([]model.Store, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *storeUseCase) GetStore(ctx context.Context, storeID string) (*model.Store, error) {
	return uc.repo.FindByID(ctx, storeID)
}

func (uc *storeUseCase) CreateStore(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	s := &model.Store{
		StoreID:  input.StoreID,
		Name:     input.Name,
		IsActive: isActive,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *storeUseCase) UpdateStore(ctx context.Context, input *dto.UpdateStoreInput) (*model.Store, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	return uc.repo.Update(ctx, &model.Store{
		StoreID:  input.StoreID,
		Name:     input.Name,
		IsActive: isActive,
	})
}

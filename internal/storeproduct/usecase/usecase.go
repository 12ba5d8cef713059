package usecase

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/storeproduct"
	"github.com/samaansync/inventory-service/internal/storeproduct/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type storeProductUseCase struct {
	repo   storeproduct.Repository
	logger logger.ZapLogger
}

func NewStoreProductUseCase(repo storeproduct.Repository, log logger.ZapLogger) storeproduct.UseCase {
	return &storeProductUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *storeProductUseCase) ListStoreProducts(ctx context.Context) ([]model.StoreProduct, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *storeProductUseCase) GetStoreProduct(ctx context.Context, storeID, productID string) (*model.StoreProduct, error) {
	return uc.repo.FindByPair(ctx, storeID, productID)
}

func (uc *storeProductUseCase) CreateStoreProduct(ctx context.Context, input *dto.StoreProductInput) (*model.StoreProduct, error) {
	existing, err := uc.repo.FindByPair(ctx, input.StoreID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, storeproduct.ErrAlreadyExists
	}

	sp := &model.StoreProduct{
		StoreID:     input.StoreID,
		ProductID:   input.ProductID,
		MinQuantity: input.MinQuantity,
		MaxQuantity: input.MaxQuantity,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.Create(ctx, sp); err != nil {
		return nil, err
	}

	uc.logger.Info("store product policy created",
		zap.String("store_id", sp.StoreID),
		zap.String("product_id", sp.ProductID),
		zap.Int("min_quantity", sp.MinQuantity),
		zap.Int("max_quantity", sp.MaxQuantity),
	)
	return sp, nil
}

func (uc *storeProductUseCase) UpdateStoreProduct(ctx context.Context, input *dto.StoreProductInput) (*model.StoreProduct, error) {
	return uc.repo.Update(ctx, &model.StoreProduct{
		StoreID:     input.StoreID,
		ProductID:   input.ProductID,
		MinQuantity: input.MinQuantity,
		MaxQuantity: input.MaxQuantity,
		IsActive:    input.IsActive,
	})
}

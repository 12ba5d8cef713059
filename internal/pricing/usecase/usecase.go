package usecase

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/pricing"
	"github.com/samaansync/inventory-service/internal/pricing/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type pricingUseCase struct {
	repo   pricing.Repository
	logger logger.ZapLogger
}

func NewPricingUseCase(repo pricing.Repository, log logger.ZapLogger) pricing.UseCase {
	return &pricingUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *pricingUseCase) ListPricing(ctx context.Context) ([]model.Pricing, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *pricingUseCase) GetPricing(ctx context.Context, storeID, productID string) (*model.Pricing, error) {
	return uc.repo.FindByPair(ctx, storeID, productID)
}

func (uc *pricingUseCase) CreatePricing(ctx context.Context, input *dto.CreatePricingInput) (*model.Pricing, error) {
	existing, err := uc.repo.FindByPair(ctx, input.StoreID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pricing.ErrAlreadyExists
	}

	p := &model.Pricing{
		StoreID:   input.StoreID,
		ProductID: input.ProductID,
		Price:     input.Price,
		UpdatedBy: input.UpdatedBy,
		IsActive:  input.IsActive,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("pricing record created",
		zap.String("store_id", p.StoreID),
		zap.String("product_id", p.ProductID),
		zap.Float64("price", p.Price),
	)
	return p, nil
}

func (uc *pricingUseCase) UpdatePricing(ctx context.Context, input *dto.UpdatePricingInput) (*model.Pricing, error) {
	return uc.repo.Update(ctx, input.StoreID, input.ProductID, input.Price, input.UpdatedBy)
}

package pricing

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/pricing/dto"
)

type UseCase interface {
	ListPricing(ctx context.Context) ([]model.Pricing, error)
	GetPricing(ctx context.Context, storeID, productID string) (*model.Pricing, error)
	CreatePricing(ctx context.Context, input *dto.CreatePricingInput) (*model.Pricing, error)
	UpdatePricing(ctx context.Context, input *dto.UpdatePricingInput) (*model.Pricing, error)
}

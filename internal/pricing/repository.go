package pricing

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var (
	ErrAlreadyExists = errors.New("pricing record already exists")
	ErrInvalidRef    = errors.New("store/product pair not present in store catalog")
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Pricing, error)
	FindByPair(ctx context.Context, storeID, productID string) (*model.Pricing, error)
	Create(ctx context.Context, p *model.Pricing) error
	Update(ctx context.Context, storeID, productID string, price float64, updatedBy string) (*model.Pricing, error)
}

package product

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
}

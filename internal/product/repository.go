package product

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("product already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	SearchByName(ctx context.Context, query string) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
}

package category

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("category already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, categoryID string) (*model.Category, error)
	Create(ctx context.Context, cat *model.Category) error
	Update(ctx context.Context, cat *model.Category) (*model.Category, error)
}

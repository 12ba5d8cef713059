package category

import (
	"context"

	"github.com/samaansync/inventory-service/internal/category/dto"
	"github.com/samaansync/inventory-service/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
}

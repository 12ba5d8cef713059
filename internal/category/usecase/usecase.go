package usecase

import (
	"context"

	"github.com/samaansync/inventory-service/internal/category"
	"github.com/samaansync/inventory-service/internal/category/dto"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, categoryID)
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	cat := &model.Category{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		IsActive:   isActive,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	isActive := input.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	return uc.repo.Update(ctx, &model.Category{
		CategoryID: input.CategoryID,
		Name:       input.Name,
		IsActive:   isActive,
	})
}

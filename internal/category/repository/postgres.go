package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/category"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.SelectContext(ctx, &categories, `SELECT * FROM product_categories ORDER BY category_id`)
	return categories, err
}

func (r *PGRepository) FindByID(ctx context.Context, categoryID string) (*model.Category, error) {
	var cat model.Category
	err := r.DB.GetContext(ctx, &cat, `SELECT * FROM product_categories WHERE category_id = $1`, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *PGRepository) Create(ctx context.Context, cat *model.Category) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO product_categories (category_id, name, is_active)
        VALUES (:category_id, :name, :is_active)`, cat)
	if postgres.IsUniqueViolation(err) {
		return category.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, cat *model.Category) (*model.Category, error) {
	var updated model.Category
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE product_categories SET name = $1, is_active = $2
        WHERE category_id = $3
        RETURNING *`,
		cat.Name, cat.IsActive, cat.CategoryID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/product"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY product_id`)
	return products, err
}

func (r *PGRepository) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE product_id = $1`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) SearchByName(ctx context.Context, query string) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, query)
	return products, err
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO products (product_id, name, category_id, is_active)
        VALUES (:product_id, :name, :category_id, :is_active)`, p)
	if postgres.IsUniqueViolation(err) {
		return product.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	var updated model.Product
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE products
        SET name = $1, category_id = $2, is_active = $3, updated_at = CURRENT_TIMESTAMP
        WHERE product_id = $4
        RETURNING *`,
		p.Name, p.CategoryID, p.IsActive, p.ProductID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

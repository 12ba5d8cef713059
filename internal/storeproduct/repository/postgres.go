package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/storeproduct"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.StoreProduct, error) {
	var records []model.StoreProduct
	err := r.DB.SelectContext(ctx, &records, `SELECT * FROM store_products ORDER BY store_id, product_id`)
	return records, err
}

func (r *PGRepository) FindByPair(ctx context.Context, storeID, productID string) (*model.StoreProduct, error) {
	var sp model.StoreProduct
	err := r.DB.GetContext(ctx, &sp,
		`SELECT * FROM store_products WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

func (r *PGRepository) Create(ctx context.Context, sp *model.StoreProduct) error {
	err := r.DB.QueryRowxContext(ctx, `
        INSERT INTO store_products (store_id, product_id, min_quantity, max_quantity, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING *`,
		sp.StoreID, sp.ProductID, sp.MinQuantity, sp.MaxQuantity, sp.IsActive,
	).StructScan(sp)
	if postgres.IsUniqueViolation(err) {
		return storeproduct.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, sp *model.StoreProduct) (*model.StoreProduct, error) {
	var updated model.StoreProduct
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE store_products
        SET min_quantity = $1, max_quantity = $2, is_active = $3, updated_at = CURRENT_TIMESTAMP
        WHERE store_id = $4 AND product_id = $5
        RETURNING *`,
		sp.MinQuantity, sp.MaxQuantity, sp.IsActive, sp.StoreID, sp.ProductID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

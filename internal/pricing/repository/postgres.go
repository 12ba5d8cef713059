package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/pricing"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Pricing, error) {
	var records []model.Pricing
	err := r.DB.SelectContext(ctx, &records, `SELECT * FROM pricing ORDER BY store_id, product_id`)
	return records, err
}

func (r *PGRepository) FindByPair(ctx context.Context, storeID, productID string) (*model.Pricing, error) {
	var p model.Pricing
	err := r.DB.GetContext(ctx, &p,
		`SELECT * FROM pricing WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Pricing) error {
	err := r.DB.QueryRowxContext(ctx, `
        INSERT INTO pricing (store_id, product_id, price, updated_by, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING *`,
		p.StoreID, p.ProductID, p.Price, p.UpdatedBy, p.IsActive,
	).StructScan(p)
	switch {
	case postgres.IsUniqueViolation(err):
		return pricing.ErrAlreadyExists
	case postgres.IsForeignKeyViolation(err):
		return pricing.ErrInvalidRef
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, storeID, productID string, price float64, updatedBy string) (*model.Pricing, error) {
	var updated model.Pricing
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE pricing
        SET price = $1, updated_by = $2, updated_at = CURRENT_TIMESTAMP
        WHERE store_id = $3 AND product_id = $4
        RETURNING *`,
		price, updatedBy, storeID, productID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

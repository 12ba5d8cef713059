package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/store"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	err := r.DB.SelectContext(ctx, &stores, `SELECT * FROM stores ORDER BY store_id`)
	return stores, err
}

func (r *PGRepository) FindByID(ctx context.Context, storeID string) (*model.Store, error) {
	var s model.Store
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM stores WHERE store_id = $1`, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Create(ctx context.Context, s *model.Store) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO stores (store_id, name, is_active)
        VALUES (:store_id, :name, :is_active)`, s)
	if postgres.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, s *model.Store) (*model.Store, error) {
	var updated model.Store
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE stores SET name = $1, is_active = $2
        WHERE store_id = $3
        RETURNING *`,
		s.Name, s.IsActive, s.StoreID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/inventory"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM inventory ORDER BY store_id, product_id`)
	return items, err
}

func (r *PGRepository) FindByInventoryID(ctx context.Context, inventoryID, storeID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv,
		`SELECT * FROM inventory WHERE inventory_id = $1 AND store_id = $2`, inventoryID, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) FindByStore(ctx context.Context, storeID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv,
		`SELECT * FROM inventory WHERE store_id = $1 LIMIT 1`, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) FindByPair(ctx context.Context, storeID, productID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv,
		`SELECT * FROM inventory WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) Create(ctx context.Context, inv *model.Inventory) error {
	err := r.DB.QueryRowxContext(ctx, `
        INSERT INTO inventory (inventory_id, store_id, product_id, current_quantity, last_updated)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING last_updated`,
		inv.InventoryID, inv.StoreID, inv.ProductID, inv.CurrentQuantity,
	).Scan(&inv.LastUpdated)
	if postgres.IsUniqueViolation(err) {
		return inventory.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) UpdateQuantity(ctx context.Context, inventoryID string, quantity int) (*model.Inventory, error) {
	var updated model.Inventory
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE inventory
        SET current_quantity = $1, last_updated = CURRENT_TIMESTAMP
        WHERE inventory_id = $2
        RETURNING *`,
		quantity, inventoryID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

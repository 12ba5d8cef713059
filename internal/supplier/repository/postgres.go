package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/supplier"
	"github.com/samaansync/inventory-service/pkg/postgres"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.DB.SelectContext(ctx, &suppliers, `SELECT * FROM suppliers ORDER BY supplier_id`)
	return suppliers, err
}

func (r *PGRepository) FindByID(ctx context.Context, supplierID string) (*model.Supplier, error) {
	var s model.Supplier
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM suppliers WHERE supplier_id = $1`, supplierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	err := r.DB.QueryRowxContext(ctx, `
        INSERT INTO suppliers (supplier_id, name, contact_info, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING *`,
		s.SupplierID, s.Name, s.ContactInfo, s.IsActive,
	).StructScan(s)
	if postgres.IsUniqueViolation(err) {
		return supplier.ErrAlreadyExists
	}
	return err
}

func (r *PGRepository) Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error) {
	var updated model.Supplier
	err := r.DB.QueryRowxContext(ctx, `
        UPDATE suppliers
        SET name = $1, contact_info = $2, is_active = $3
        WHERE supplier_id = $4
        RETURNING *`,
		s.Name, s.ContactInfo, s.IsActive, s.SupplierID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *PGRepository) FindAllOrders(ctx context.Context) ([]model.SupplierOrder, error) {
	var orders []model.SupplierOrder
	err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM supplier_order_products ORDER BY order_id`)
	return orders, err
}

func (r *PGRepository) FindOrderByID(ctx context.Context, orderID string) (*model.SupplierOrder, error) {
	var o model.SupplierOrder
	err := r.DB.GetContext(ctx, &o,
		`SELECT * FROM supplier_order_products WHERE order_id = $1`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) PlaceOrder(ctx context.Context, o *model.SupplierOrder) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
        INSERT INTO supplier_order_products (order_id, supplier_id, store_id, product_id, quantity, price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING *`,
		o.OrderID, o.SupplierID, o.StoreID, o.ProductID, o.Quantity, o.Price,
	).StructScan(o)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) UpdateOrder(ctx context.Context, o *model.SupplierOrder) (*model.SupplierOrder, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var updated model.SupplierOrder
	err = tx.QueryRowxContext(ctx, `
        UPDATE supplier_order_products
        SET supplier_id = $1, product_id = $2, store_id = $3, quantity = $4, price = $5
        WHERE order_id = $6
        RETURNING *`,
		o.SupplierID, o.ProductID, o.StoreID, o.Quantity, o.Price, o.OrderID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// WithinTx opens the atomic unit for a movement. The deferred Rollback is a
// no-op after a successful Commit, so every early return inside fn leaves
// the database untouched.
func (r *PGRepository) WithinTx(ctx context.Context, fn func(led transaction.Ledger) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&pgLedger{tx: tx}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) List(ctx context.Context) ([]model.ProductTransaction, error) {
	var items []model.ProductTransaction
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM product_transactions ORDER BY timestamp DESC`)
	return items, err
}

func (r *PGRepository) GetByID(ctx context.Context, transactionID string) (*model.ProductTransaction, error) {
	var item model.ProductTransaction
	err := r.DB.GetContext(ctx, &item,
		`SELECT * FROM product_transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error) {
	var items []model.ProductTransaction
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM product_transactions WHERE DATE(timestamp) = $1`, date)
	return items, err
}

func (r *PGRepository) Summary(ctx context.Context) (*dto.MovementSummary, error) {
	var summary dto.MovementSummary
	err := r.DB.GetContext(ctx, &summary, `
        SELECT
            COUNT(*) FILTER (WHERE movement_type = 'stock_in') AS stock_in_count,
            COUNT(*) FILTER (WHERE movement_type = 'sell')     AS sell_count,
            COUNT(*) FILTER (WHERE movement_type = 'remove')   AS remove_count
        FROM product_transactions`)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// pgLedger is the Ledger bound to one open transaction.
type pgLedger struct {
	tx *sqlx.Tx
}

type policyRow struct {
	CurrentQuantity int `db:"current_quantity"`
	MinQuantity     int `db:"min_quantity"`
	MaxQuantity     int `db:"max_quantity"`
}

func (l *pgLedger) WouldOverstock(ctx context.Context, storeID, productID string, incoming int) (bool, error) {
	var row policyRow
	err := l.tx.GetContext(ctx, &row, `
        SELECT i.current_quantity, sp.max_quantity, sp.min_quantity
        FROM inventory i
        JOIN store_products sp
          ON i.store_id = sp.store_id AND i.product_id = sp.product_id
        WHERE i.store_id = $1 AND i.product_id = $2`,
		storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No policy row: the pair is unconstrained.
			return false, nil
		}
		return false, fmt.Errorf("check overstock: %w", err)
	}
	return row.CurrentQuantity+incoming > row.MaxQuantity, nil
}

func (l *pgLedger) WouldStockout(ctx context.Context, storeID, productID string, outgoing int) (bool, error) {
	var row policyRow
	err := l.tx.GetContext(ctx, &row, `
        SELECT i.current_quantity, sp.max_quantity, sp.min_quantity
        FROM inventory i
        JOIN store_products sp
          ON i.store_id = sp.store_id AND i.product_id = sp.product_id
        WHERE i.store_id = $1 AND i.product_id = $2`,
		storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check stockout: %w", err)
	}
	return row.CurrentQuantity-outgoing < row.MinQuantity, nil
}

func (l *pgLedger) CurrentQuantityForUpdate(ctx context.Context, storeID, productID string) (int, error) {
	var current int
	err := l.tx.GetContext(ctx, &current, `
        SELECT current_quantity FROM inventory
        WHERE store_id = $1 AND product_id = $2
        FOR UPDATE`,
		storeID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, transaction.ErrInventoryNotFound
		}
		return 0, fmt.Errorf("read quantity: %w", err)
	}
	return current, nil
}

func (l *pgLedger) ApplyDelta(ctx context.Context, storeID, productID string, delta int) error {
	_, err := l.tx.ExecContext(ctx, `
        UPDATE inventory
        SET current_quantity = current_quantity + $1,
            last_updated = CURRENT_TIMESTAMP
        WHERE store_id = $2 AND product_id = $3`,
		delta, storeID, productID)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	return nil
}

func (l *pgLedger) AppendMovement(ctx context.Context, m *model.ProductTransaction) error {
	err := l.tx.QueryRowxContext(ctx, `
        INSERT INTO product_transactions
            (transaction_id, store_id, product_id, quantity, movement_type, updated_by, supplier_id, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
        RETURNING timestamp`,
		m.TransactionID, m.StoreID, m.ProductID, m.Quantity, m.MovementType, m.UpdatedBy, m.SupplierID,
	).Scan(&m.Timestamp)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

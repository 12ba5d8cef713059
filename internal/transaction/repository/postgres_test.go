package repository

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction"
)

// These tests need a reachable Postgres and are skipped otherwise.
//
// Note on isolation: only the remove path locks the inventory row. Two
// concurrent stock_in/sell movements on the same pair can both read
// pre-update state before either commits under the default isolation
// level, so their policy checks are only as strong as single-statement
// atomicity. The tests below exercise sequential behavior.
func getTestDB(t *testing.T) *sqlx.DB {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=samaansync password=samaansync dbname=samaansync_test sslmode=disable"
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}

	ctx := context.Background()
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS inventory (
            inventory_id TEXT PRIMARY KEY,
            store_id TEXT NOT NULL,
            product_id TEXT NOT NULL,
            current_quantity INTEGER NOT NULL,
            last_updated TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (store_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS store_products (
            store_id TEXT NOT NULL,
            product_id TEXT NOT NULL,
            min_quantity INTEGER NOT NULL,
            max_quantity INTEGER NOT NULL,
            is_active TEXT NOT NULL DEFAULT 'Y',
            updated_at TIMESTAMPTZ,
            PRIMARY KEY (store_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS product_transactions (
            transaction_id TEXT PRIMARY KEY,
            store_id TEXT NOT NULL,
            product_id TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            movement_type TEXT NOT NULL,
            updated_by TEXT NOT NULL,
            supplier_id TEXT NOT NULL,
            timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("setup schema: %v", err)
		}
	}

	return db
}

func resetPair(t *testing.T, db *sqlx.DB, storeID, productID string, qty, min, max int) {
	t.Helper()
	ctx := context.Background()

	db.ExecContext(ctx, `DELETE FROM product_transactions WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	db.ExecContext(ctx, `DELETE FROM inventory WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	db.ExecContext(ctx, `DELETE FROM store_products WHERE store_id = $1 AND product_id = $2`, storeID, productID)

	if _, err := db.ExecContext(ctx, `
        INSERT INTO inventory (inventory_id, store_id, product_id, current_quantity)
        VALUES ($1, $2, $3, $4)`,
		"inv-"+storeID+"-"+productID, storeID, productID, qty); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	if _, err := db.ExecContext(ctx, `
        INSERT INTO store_products (store_id, product_id, min_quantity, max_quantity)
        VALUES ($1, $2, $3, $4)`,
		storeID, productID, min, max); err != nil {
		t.Fatalf("seed policy: %v", err)
	}
}

func currentQuantity(t *testing.T, db *sqlx.DB, storeID, productID string) int {
	t.Helper()
	var qty int
	err := db.GetContext(context.Background(), &qty,
		`SELECT current_quantity FROM inventory WHERE store_id = $1 AND product_id = $2`, storeID, productID)
	if err != nil {
		t.Fatalf("read quantity: %v", err)
	}
	return qty
}

func TestWithinTxCommitsMovementPair(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	repo := NewPGRepository(db)
	resetPair(t, db, "s1", "p1", 10, 0, 20)
	ctx := context.Background()

	rec := &model.ProductTransaction{
		TransactionID: "tx-commit-1",
		StoreID:       "s1",
		ProductID:     "p1",
		Quantity:      5,
		MovementType:  model.MovementStockIn,
		UpdatedBy:     "tester",
		SupplierID:    "sup-1",
	}

	err := repo.WithinTx(ctx, func(led transaction.Ledger) error {
		over, err := led.WouldOverstock(ctx, "s1", "p1", 5)
		if err != nil {
			return err
		}
		if over {
			t.Fatal("unexpected overstock")
		}
		if err := led.AppendMovement(ctx, rec); err != nil {
			return err
		}
		return led.ApplyDelta(ctx, "s1", "p1", 5)
	})
	if err != nil {
		t.Fatalf("WithinTx failed: %v", err)
	}

	if got := currentQuantity(t, db, "s1", "p1"); got != 15 {
		t.Errorf("expected quantity 15, got %d", got)
	}
	if rec.Timestamp.IsZero() {
		t.Error("timestamp not assigned by insert")
	}

	stored, err := repo.GetByID(ctx, "tx-commit-1")
	if err != nil || stored == nil {
		t.Fatalf("movement row not found: %v", err)
	}
	if stored.Quantity != 5 || stored.MovementType != model.MovementStockIn {
		t.Errorf("unexpected stored movement: %+v", stored)
	}
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	repo := NewPGRepository(db)
	resetPair(t, db, "s1", "p2", 10, 0, 20)
	ctx := context.Background()

	err := repo.WithinTx(ctx, func(led transaction.Ledger) error {
		rec := &model.ProductTransaction{
			TransactionID: "tx-rollback-1",
			StoreID:       "s1",
			ProductID:     "p2",
			Quantity:      5,
			MovementType:  model.MovementStockIn,
			UpdatedBy:     "tester",
			SupplierID:    "sup-1",
		}
		if err := led.AppendMovement(ctx, rec); err != nil {
			return err
		}
		if err := led.ApplyDelta(ctx, "s1", "p2", 5); err != nil {
			return err
		}
		return transaction.ErrOverstock
	})
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if got := currentQuantity(t, db, "s1", "p2"); got != 10 {
		t.Errorf("rollback did not restore quantity: %d", got)
	}
	stored, err := repo.GetByID(ctx, "tx-rollback-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored != nil {
		t.Error("movement row survived rollback")
	}
}

func TestPredicatesWithoutPolicyRow(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	repo := NewPGRepository(db)
	resetPair(t, db, "s1", "p3", 10, 0, 20)
	ctx := context.Background()

	// Drop the policy row; the pair becomes unconstrained.
	if _, err := db.ExecContext(ctx, `DELETE FROM store_products WHERE store_id = 's1' AND product_id = 'p3'`); err != nil {
		t.Fatalf("delete policy: %v", err)
	}

	err := repo.WithinTx(ctx, func(led transaction.Ledger) error {
		over, err := led.WouldOverstock(ctx, "s1", "p3", 1_000_000)
		if err != nil {
			return err
		}
		if over {
			t.Error("WouldOverstock true without policy row")
		}

		out, err := led.WouldStockout(ctx, "s1", "p3", 1_000_000)
		if err != nil {
			return err
		}
		if out {
			t.Error("WouldStockout true without policy row")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx failed: %v", err)
	}
}

func TestCurrentQuantityForUpdateMissingRow(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	repo := NewPGRepository(db)
	ctx := context.Background()

	db.ExecContext(ctx, `DELETE FROM inventory WHERE store_id = 's9' AND product_id = 'p9'`)

	err := repo.WithinTx(ctx, func(led transaction.Ledger) error {
		_, err := led.CurrentQuantityForUpdate(ctx, "s9", "p9")
		return err
	})
	if err != transaction.ErrInventoryNotFound {
		t.Fatalf("expected ErrInventoryNotFound, got %v", err)
	}
}

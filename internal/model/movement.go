package model

import (
	"fmt"
	"time"
)

// MovementType classifies a stock movement. The set is closed: anything else
// is rejected by ParseMovementType before it reaches the ledger.
type MovementType string

const (
	MovementStockIn MovementType = "stock_in"
	MovementSell    MovementType = "sell"
	MovementRemove  MovementType = "remove"
)

func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementStockIn, MovementSell, MovementRemove:
		return MovementType(s), nil
	default:
		return "", fmt.Errorf("invalid movement_type %q", s)
	}
}

func (t MovementType) String() string { return string(t) }

// ProductTransaction is one row of the append-only movement log. Quantity is
// always the positive magnitude as submitted; the direction is implied by
// MovementType. Rows are never updated or deleted.
type ProductTransaction struct {
	TransactionID string       `db:"transaction_id" json:"transaction_id"`
	StoreID       string       `db:"store_id" json:"store_id"`
	ProductID     string       `db:"product_id" json:"product_id"`
	Quantity      int          `db:"quantity" json:"quantity"`
	MovementType  MovementType `db:"movement_type" json:"movement_type"`
	UpdatedBy     string       `db:"updated_by" json:"updated_by"`
	SupplierID    string       `db:"supplier_id" json:"supplier_id"`
	Timestamp     time.Time    `db:"timestamp" json:"timestamp"`
}

package model

import "time"

// Inventory is the authoritative on-hand count for a (store, product) pair.
// Exactly one row exists per pair; CurrentQuantity is mutated only by the
// movement workflow and the explicit update endpoint.
type Inventory struct {
	InventoryID     string    `db:"inventory_id" json:"inventory_id"`
	StoreID         string    `db:"store_id" json:"store_id"`
	ProductID       string    `db:"product_id" json:"product_id"`
	CurrentQuantity int       `db:"current_quantity" json:"current_quantity"`
	LastUpdated     time.Time `db:"last_updated" json:"last_updated"`
}

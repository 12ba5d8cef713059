package model

import "time"

// StoreProduct carries the per-(store, product) stocking policy. Movements
// are checked against MinQuantity/MaxQuantity; a pair without a row here is
// unconstrained.
type StoreProduct struct {
	StoreID     string     `db:"store_id" json:"store_id"`
	ProductID   string     `db:"product_id" json:"product_id"`
	MinQuantity int        `db:"min_quantity" json:"min_quantity"`
	MaxQuantity int        `db:"max_quantity" json:"max_quantity"`
	IsActive    string     `db:"is_active" json:"is_active"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

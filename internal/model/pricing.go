package model

import "time"

type Pricing struct {
	StoreID   string     `db:"store_id" json:"store_id"`
	ProductID string     `db:"product_id" json:"product_id"`
	Price     float64    `db:"price" json:"price"`
	UpdatedBy string     `db:"updated_by" json:"updated_by"`
	IsActive  string     `db:"is_active" json:"is_active"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

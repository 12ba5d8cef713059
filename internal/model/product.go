package model

import "time"

type Product struct {
	ProductID  string     `db:"product_id" json:"product_id"`
	Name       string     `db:"name" json:"name"`
	CategoryID string     `db:"category_id" json:"category_id"`
	IsActive   string     `db:"is_active" json:"is_active"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

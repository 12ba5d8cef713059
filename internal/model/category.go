package model

type Category struct {
	CategoryID string `db:"category_id" json:"category_id"`
	Name       string `db:"name" json:"name"`
	IsActive   string `db:"is_active" json:"is_active"`
}

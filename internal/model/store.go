package model

type Store struct {
	StoreID  string `db:"store_id" json:"store_id"`
	Name     string `db:"name" json:"name"`
	IsActive string `db:"is_active" json:"is_active"`
}

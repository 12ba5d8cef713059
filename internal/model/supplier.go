package model

type Supplier struct {
	SupplierID  string  `db:"supplier_id" json:"supplier_id"`
	Name        string  `db:"name" json:"name"`
	ContactInfo *string `db:"contact_info" json:"contact_info"`
	IsActive    string  `db:"is_active" json:"is_active"`
}

type SupplierOrder struct {
	OrderID    string  `db:"order_id" json:"order_id"`
	SupplierID string  `db:"supplier_id" json:"supplier_id"`
	StoreID    string  `db:"store_id" json:"store_id"`
	ProductID  string  `db:"product_id" json:"product_id"`
	Quantity   int     `db:"quantity" json:"quantity"`
	Price      float64 `db:"price" json:"price"`
}

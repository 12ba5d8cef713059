package dto

type MovementInput struct {
	StoreID      string
	ProductID    string
	Quantity     int
	UpdatedBy    string
	SupplierID   string
	MovementType string
}

type MovementSummary struct {
	StockInCount int `db:"stock_in_count" json:"stock_in_count"`
	SellCount    int `db:"sell_count" json:"sell_count"`
	RemoveCount  int `db:"remove_count" json:"remove_count"`
}

package dto

type SupplierInput struct {
	SupplierID  string
	Name        string
	ContactInfo *string
	IsActive    string
}

type SupplierOrderInput struct {
	OrderID    string
	SupplierID string
	StoreID    string
	ProductID  string
	Quantity   int
	Price      float64
}

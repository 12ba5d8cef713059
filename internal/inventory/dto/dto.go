package dto

type CreateInventoryInput struct {
	StoreID         string
	ProductID       string
	CurrentQuantity int
}

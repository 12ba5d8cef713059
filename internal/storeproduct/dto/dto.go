package dto

type StoreProductInput struct {
	StoreID     string
	ProductID   string
	MinQuantity int
	MaxQuantity int
	IsActive    string
}

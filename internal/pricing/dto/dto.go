package dto

type CreatePricingInput struct {
	StoreID   string
	ProductID string
	Price     float64
	UpdatedBy string
	IsActive  string
}

type UpdatePricingInput struct {
	StoreID   string
	ProductID string
	Price     float64
	UpdatedBy string
}

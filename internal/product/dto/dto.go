package dto

type CreateProductInput struct {
	ProductID  string
	Name       string
	CategoryID string
	IsActive   string
}

type UpdateProductInput struct {
	ProductID  string
	Name       string
	CategoryID string
	IsActive   string
}

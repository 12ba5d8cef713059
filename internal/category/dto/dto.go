package dto

type CreateCategoryInput struct {
	CategoryID string
	Name       string
	IsActive   string
}

type UpdateCategoryInput struct {
	CategoryID string
	Name       string
	IsActive   string
}

package dto

type CreateStoreInput struct {
	StoreID  string
	Name     string
	IsActive string
}

type UpdateStoreInput struct {
	StoreID  string
	Name     string
	IsActive string
}

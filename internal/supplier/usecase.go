package supplier

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/supplier/dto"
)

type UseCase interface {
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	GetSupplier(ctx context.Context, supplierID string) (*model.Supplier, error)
	CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error)

	ListOrders(ctx context.Context) ([]model.SupplierOrder, error)
	GetOrder(ctx context.Context, orderID string) (*model.SupplierOrder, error)
	PlaceOrder(ctx context.Context, input *dto.SupplierOrderInput) (*model.SupplierOrder, error)
	UpdateOrder(ctx context.Context, input *dto.SupplierOrderInput) (*model.SupplierOrder, error)
}

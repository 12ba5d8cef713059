package supplier

import (
	"context"
	"errors"

	"github.com/samaansync/inventory-service/internal/model"
)

var ErrAlreadyExists = errors.New("supplier already exists")

type Repository interface {
	FindAll(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, supplierID string) (*model.Supplier, error)
	Create(ctx context.Context, s *model.Supplier) error
	Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error)

	FindAllOrders(ctx context.Context) ([]model.SupplierOrder, error)
	FindOrderByID(ctx context.Context, orderID string) (*model.SupplierOrder, error)
	PlaceOrder(ctx context.Context, o *model.SupplierOrder) error
	UpdateOrder(ctx context.Context, o *model.SupplierOrder) (*model.SupplierOrder, error)
}

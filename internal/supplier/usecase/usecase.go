package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/supplier"
	"github.com/samaansync/inventory-service/internal/supplier/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, supplierID string) (*model.Supplier, error) {
	return uc.repo.FindByID(ctx, supplierID)
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error) {
	s := &model.Supplier{
		SupplierID:  input.SupplierID,
		Name:        input.Name,
		ContactInfo: input.ContactInfo,
		IsActive:    input.IsActive,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("supplier created", zap.String("supplier_id", s.SupplierID), zap.String("name", s.Name))
	return s, nil
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.SupplierInput) (*model.Supplier, error) {
	return uc.repo.Update(ctx, &model.Supplier{
		SupplierID:  input.SupplierID,
		Name:        input.Name,
		ContactInfo: input.ContactInfo,
		IsActive:    input.IsActive,
	})
}

func (uc *supplierUseCase) ListOrders(ctx context.Context) ([]model.SupplierOrder, error) {
	return uc.repo.FindAllOrders(ctx)
}

func (uc *supplierUseCase) GetOrder(ctx context.Context, orderID string) (*model.SupplierOrder, error) {
	return uc.repo.FindOrderByID(ctx, orderID)
}

func (uc *supplierUseCase) PlaceOrder(ctx context.Context, input *dto.SupplierOrderInput) (*model.SupplierOrder, error) {
	o := &model.SupplierOrder{
		OrderID:    uuid.New().String(),
		SupplierID: input.SupplierID,
		StoreID:    input.StoreID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Price:      input.Price,
	}
	if err := uc.repo.PlaceOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Info("supplier order placed",
		zap.String("order_id", o.OrderID),
		zap.String("supplier_id", o.SupplierID),
		zap.String("store_id", o.StoreID),
		zap.String("product_id", o.ProductID),
		zap.Int("quantity", o.Quantity),
	)
	return o, nil
}

func (uc *supplierUseCase) UpdateOrder(ctx context.Context, input *dto.SupplierOrderInput) (*model.SupplierOrder, error) {
	return uc.repo.UpdateOrder(ctx, &model.SupplierOrder{
		OrderID:    input.OrderID,
		SupplierID: input.SupplierID,
		StoreID:    input.StoreID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Price:      input.Price,
	})
}

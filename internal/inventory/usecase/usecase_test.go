package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/samaansync/inventory-service/internal/inventory"
	"github.com/samaansync/inventory-service/internal/inventory/dto"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/pkg/logger"
)

type fakeRepo struct {
	records   map[string]*model.Inventory
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*model.Inventory)}
}

func pairKey(storeID, productID string) string {
	return storeID + "/" + productID
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Inventory, error) {
	var out []model.Inventory
	for _, inv := range f.records {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeRepo) FindByInventoryID(ctx context.Context, inventoryID, storeID string) (*model.Inventory, error) {
	for _, inv := range f.records {
		if inv.InventoryID == inventoryID && inv.StoreID == storeID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByStore(ctx context.Context, storeID string) (*model.Inventory, error) {
	for _, inv := range f.records {
		if inv.StoreID == storeID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByPair(ctx context.Context, storeID, productID string) (*model.Inventory, error) {
	if inv, ok := f.records[pairKey(storeID, productID)]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, inv *model.Inventory) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := pairKey(inv.StoreID, inv.ProductID)
	if _, ok := f.records[key]; ok {
		return inventory.ErrAlreadyExists
	}
	cp := *inv
	f.records[key] = &cp
	return nil
}

func (f *fakeRepo) UpdateQuantity(ctx context.Context, inventoryID string, quantity int) (*model.Inventory, error) {
	for _, inv := range f.records {
		if inv.InventoryID == inventoryID {
			inv.CurrentQuantity = quantity
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func TestCreateRecordAssignsID(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	inv, err := uc.CreateRecord(context.Background(), &dto.CreateInventoryInput{
		StoreID:         "store-1",
		ProductID:       "prod-1",
		CurrentQuantity: 25,
	})
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if inv.InventoryID == "" {
		t.Error("expected generated inventory_id")
	}
	if inv.CurrentQuantity != 25 {
		t.Errorf("current_quantity = %d, want 25", inv.CurrentQuantity)
	}
}

func TestCreateRecordRejectsDuplicatePair(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	input := &dto.CreateInventoryInput{StoreID: "store-1", ProductID: "prod-1", CurrentQuantity: 10}
	if _, err := uc.CreateRecord(context.Background(), input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.CreateRecord(context.Background(), input)
	if !errors.Is(err, inventory.ErrAlreadyExists) {
		t.Errorf("err = %v, want ErrAlreadyExists", err)
	}
	if len(repo.records) != 1 {
		t.Errorf("records = %d, want 1", len(repo.records))
	}
}

func TestCreateRecordPropagatesStorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	_, err := uc.CreateRecord(context.Background(), &dto.CreateInventoryInput{
		StoreID:   "store-1",
		ProductID: "prod-1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	inv, err := uc.UpdateQuantity(context.Background(), "missing", 5)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if inv != nil {
		t.Errorf("expected nil for unknown inventory_id, got %+v", inv)
	}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samaansync/inventory-service/internal/inventory"
	"github.com/samaansync/inventory-service/internal/inventory/dto"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/pkg/cache"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	lockTTL     = 5 * time.Second
	lockRetries = 3
	lockBackoff = 100 * time.Millisecond
)

type inventoryUseCase struct {
	repo   inventory.Repository
	redis  *cache.RedisClient
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, redis *cache.RedisClient, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		redis:  redis,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *inventoryUseCase) GetItem(ctx context.Context, inventoryID, storeID string) (*model.Inventory, error) {
	return uc.repo.FindByInventoryID(ctx, inventoryID, storeID)
}

func (uc *inventoryUseCase) GetStoreStatus(ctx context.Context, storeID string) (*model.Inventory, error) {
	return uc.repo.FindByStore(ctx, storeID)
}

// CreateRecord keeps one inventory row per store/product pair. The
// existence check and insert are guarded by a short Redis lock so two
// concurrent creates for the same pair cannot both pass the check.
func (uc *inventoryUseCase) CreateRecord(ctx context.Context, input *dto.CreateInventoryInput) (*model.Inventory, error) {
	lockKey := fmt.Sprintf("inventory:create:%s:%s", input.StoreID, input.ProductID)
	lockValue := uuid.New().String()

	if uc.redis != nil {
		acquired := false
		for i := 0; i < lockRetries; i++ {
			ok, err := uc.redis.AcquireLock(ctx, lockKey, lockValue, lockTTL)
			if err != nil {
				uc.logger.Warn("inventory create lock unavailable", zap.Error(err))
				break
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(lockBackoff)
		}
		if acquired {
			defer func() {
				if err := uc.redis.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
					uc.logger.Warn("failed to release inventory create lock", zap.Error(err))
				}
			}()
		}
	}

	existing, err := uc.repo.FindByPair(ctx, input.StoreID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, inventory.ErrAlreadyExists
	}

	inv := &model.Inventory{
		InventoryID:     uuid.New().String(),
		StoreID:         input.StoreID,
		ProductID:       input.ProductID,
		CurrentQuantity: input.CurrentQuantity,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Info("inventory record created",
		zap.String("inventory_id", inv.InventoryID),
		zap.String("store_id", inv.StoreID),
		zap.String("product_id", inv.ProductID),
	)
	return inv, nil
}

func (uc *inventoryUseCase) UpdateQuantity(ctx context.Context, inventoryID string, quantity int) (*model.Inventory, error) {
	return uc.repo.UpdateQuantity(ctx, inventoryID, quantity)
}

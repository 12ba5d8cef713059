package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type movementUseCase struct {
	repo   transaction.Repository
	logger logger.ZapLogger
}

func NewMovementUseCase(repo transaction.Repository, log logger.ZapLogger) transaction.UseCase {
	return &movementUseCase{
		repo:   repo,
		logger: log,
	}
}

// Process runs the whole movement inside one atomic unit. Any returned
// error, business rejection or storage fault, means the transaction was
// rolled back and nothing was persisted.
//
// Only the remove path takes a row lock: its check reads the inventory
// record alone, in its own round trip, so two concurrent removals could
// otherwise both pass the quantity check against stale data. stock_in and
// sell evaluate their policy join under plain transaction isolation.
func (uc *movementUseCase) Process(ctx context.Context, input *dto.MovementInput) (*model.ProductTransaction, error) {
	var rec *model.ProductTransaction

	err := uc.repo.WithinTx(ctx, func(led transaction.Ledger) error {
		kind, err := model.ParseMovementType(input.MovementType)
		if err != nil {
			return transaction.ErrUnsupportedMovement
		}

		switch kind {
		case model.MovementStockIn:
			over, err := led.WouldOverstock(ctx, input.StoreID, input.ProductID, input.Quantity)
			if err != nil {
				return err
			}
			if over {
				return transaction.ErrOverstock
			}

			rec = newRecord(input, kind)
			if err := led.AppendMovement(ctx, rec); err != nil {
				return err
			}
			return led.ApplyDelta(ctx, input.StoreID, input.ProductID, input.Quantity)

		case model.MovementSell:
			out, err := led.WouldStockout(ctx, input.StoreID, input.ProductID, input.Quantity)
			if err != nil {
				return err
			}
			if out {
				return transaction.ErrStockout
			}

			rec = newRecord(input, kind)
			if err := led.AppendMovement(ctx, rec); err != nil {
				return err
			}
			return led.ApplyDelta(ctx, input.StoreID, input.ProductID, -input.Quantity)

		case model.MovementRemove:
			current, err := led.CurrentQuantityForUpdate(ctx, input.StoreID, input.ProductID)
			if err != nil {
				return err
			}
			if input.Quantity > current {
				return transaction.ErrInsufficientQuantity
			}

			rec = newRecord(input, kind)
			if err := led.AppendMovement(ctx, rec); err != nil {
				return err
			}
			return led.ApplyDelta(ctx, input.StoreID, input.ProductID, -input.Quantity)
		}

		return transaction.ErrUnsupportedMovement
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("movement processed",
		zap.String("transaction_id", rec.TransactionID),
		zap.String("store_id", rec.StoreID),
		zap.String("product_id", rec.ProductID),
		zap.String("movement_type", rec.MovementType.String()),
		zap.Int("quantity", rec.Quantity),
	)
	return rec, nil
}

func newRecord(input *dto.MovementInput, kind model.MovementType) *model.ProductTransaction {
	return &model.ProductTransaction{
		TransactionID: uuid.New().String(),
		StoreID:       input.StoreID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		MovementType:  kind,
		UpdatedBy:     input.UpdatedBy,
		SupplierID:    input.SupplierID,
	}
}

func (uc *movementUseCase) ListTransactions(ctx context.Context) ([]model.ProductTransaction, error) {
	return uc.repo.List(ctx)
}

func (uc *movementUseCase) GetTransaction(ctx context.Context, transactionID string) (*model.ProductTransaction, error) {
	return uc.repo.GetByID(ctx, transactionID)
}

func (uc *movementUseCase) ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error) {
	return uc.repo.ListByDate(ctx, date)
}

func (uc *movementUseCase) Summary(ctx context.Context) (*dto.MovementSummary, error) {
	return uc.repo.Summary(ctx)
}

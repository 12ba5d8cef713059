package transaction

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
)

type UseCase interface {
	// Process validates a movement against the ledger and atomically applies
	// the log-append + quantity-update pair, or rejects it leaving state
	// untouched.
	Process(ctx context.Context, input *dto.MovementInput) (*model.ProductTransaction, error)

	ListTransactions(ctx context.Context) ([]model.ProductTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*model.ProductTransaction, error)
	ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error)
	Summary(ctx context.Context) (*dto.MovementSummary, error)
}

package transaction

import (
	"context"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
)

// Ledger exposes the stock-state primitives available inside one atomic
// unit. Every method runs on the transaction opened by WithinTx, so a
// predicate check and the mutations it guards see the same snapshot.
type Ledger interface {
	// WouldOverstock reports whether adding incoming units would push the
	// pair past its configured max_quantity. Pairs without a policy row are
	// never overstocked.
	WouldOverstock(ctx context.Context, storeID, productID string, incoming int) (bool, error)

	// WouldStockout reports whether removing outgoing units would drop the
	// pair below its configured min_quantity. Pairs without a policy row
	// never stock out.
	WouldStockout(ctx context.Context, storeID, productID string, outgoing int) (bool, error)

	// CurrentQuantityForUpdate reads the on-hand count with a row lock held
	// until the atomic unit ends. Returns ErrInventoryNotFound if the pair
	// has no inventory record.
	CurrentQuantityForUpdate(ctx context.Context, storeID, productID string) (int, error)

	// ApplyDelta adds a signed delta to the on-hand count and refreshes
	// last_updated.
	ApplyDelta(ctx context.Context, storeID, productID string, delta int) error

	// AppendMovement inserts an immutable log row. The server-assigned
	// timestamp is written back into m.
	AppendMovement(ctx context.Context, m *model.ProductTransaction) error
}

type Repository interface {
	// WithinTx runs fn inside a database transaction. The transaction is
	// rolled back whenever fn returns an error, on every path; it commits
	// only when fn returns nil.
	WithinTx(ctx context.Context, fn func(led Ledger) error) error

	List(ctx context.Context) ([]model.ProductTransaction, error)
	GetByID(ctx context.Context, transactionID string) (*model.ProductTransaction, error)
	ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error)
	Summary(ctx context.Context) (*dto.MovementSummary, error)
}

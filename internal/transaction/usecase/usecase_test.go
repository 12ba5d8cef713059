package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
)

type policy struct {
	min int
	max int
}

type state struct {
	qty      map[string]int
	policies map[string]policy
	log      []model.ProductTransaction
}

func key(storeID, productID string) string { return storeID + "|" + productID }

func (s *state) clone() *state {
	c := &state{
		qty:      make(map[string]int, len(s.qty)),
		policies: make(map[string]policy, len(s.policies)),
		log:      append([]model.ProductTransaction(nil), s.log...),
	}
	for k, v := range s.qty {
		c.qty[k] = v
	}
	for k, v := range s.policies {
		c.policies[k] = v
	}
	return c
}

// fakeRepo stages every mutation on a copy of the state and promotes the
// copy only when fn succeeds, mirroring commit/rollback.
type fakeRepo struct {
	state     *state
	appendErr error
	commits   int
	rollbacks int
}

func (r *fakeRepo) WithinTx(ctx context.Context, fn func(led transaction.Ledger) error) error {
	staged := r.state.clone()
	if err := fn(&fakeLedger{state: staged, appendErr: r.appendErr}); err != nil {
		r.rollbacks++
		return err
	}
	r.state = staged
	r.commits++
	return nil
}

func (r *fakeRepo) List(ctx context.Context) ([]model.ProductTransaction, error) {
	return r.state.log, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*model.ProductTransaction, error) {
	for i := range r.state.log {
		if r.state.log[i].TransactionID == id {
			return &r.state.log[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error) {
	return r.state.log, nil
}

func (r *fakeRepo) Summary(ctx context.Context) (*dto.MovementSummary, error) {
	var s dto.MovementSummary
	for _, m := range r.state.log {
		switch m.MovementType {
		case model.MovementStockIn:
			s.StockInCount++
		case model.MovementSell:
			s.SellCount++
		case model.MovementRemove:
			s.RemoveCount++
		}
	}
	return &s, nil
}

type fakeLedger struct {
	state     *state
	appendErr error
}

func (l *fakeLedger) WouldOverstock(ctx context.Context, storeID, productID string, incoming int) (bool, error) {
	p, hasPolicy := l.state.policies[key(storeID, productID)]
	current, hasInv := l.state.qty[key(storeID, productID)]
	if !hasPolicy || !hasInv {
		return false, nil
	}
	return current+incoming > p.max, nil
}

func (l *fakeLedger) WouldStockout(ctx context.Context, storeID, productID string, outgoing int) (bool, error) {
	p, hasPolicy := l.state.policies[key(storeID, productID)]
	current, hasInv := l.state.qty[key(storeID, productID)]
	if !hasPolicy || !hasInv {
		return false, nil
	}
	return current-outgoing < p.min, nil
}

func (l *fakeLedger) CurrentQuantityForUpdate(ctx context.Context, storeID, productID string) (int, error) {
	current, ok := l.state.qty[key(storeID, productID)]
	if !ok {
		return 0, transaction.ErrInventoryNotFound
	}
	return current, nil
}

func (l *fakeLedger) ApplyDelta(ctx context.Context, storeID, productID string, delta int) error {
	if _, ok := l.state.qty[key(storeID, productID)]; ok {
		l.state.qty[key(storeID, productID)] += delta
	}
	return nil
}

func (l *fakeLedger) AppendMovement(ctx context.Context, m *model.ProductTransaction) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	m.Timestamp = time.Now()
	l.state.log = append(l.state.log, *m)
	return nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{state: &state{
		qty:      make(map[string]int),
		policies: make(map[string]policy),
	}}
}

func movement(kind string, qty int) *dto.MovementInput {
	return &dto.MovementInput{
		StoreID:      "1",
		ProductID:    "1",
		Quantity:     qty,
		UpdatedBy:    "tester",
		SupplierID:   "sup-1",
		MovementType: kind,
	}
}

func TestStockInWithinPolicy(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	repo.state.policies[key("1", "1")] = policy{min: 0, max: 20}
	uc := NewMovementUseCase(repo, logger.NewNop())

	rec, err := uc.Process(context.Background(), movement("stock_in", 5))
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if got := repo.state.qty[key("1", "1")]; got != 15 {
		t.Errorf("expected quantity 15, got %d", got)
	}
	if len(repo.state.log) != 1 {
		t.Fatalf("expected 1 movement record, got %d", len(repo.state.log))
	}
	logged := repo.state.log[0]
	if logged.MovementType != model.MovementStockIn || logged.Quantity != 5 {
		t.Errorf("unexpected movement record: %+v", logged)
	}
	if rec.TransactionID == "" || rec.Timestamp.IsZero() {
		t.Errorf("record missing server-assigned fields: %+v", rec)
	}
}

func TestStockInOverstockRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	repo.state.policies[key("1", "1")] = policy{min: 0, max: 20}
	uc := NewMovementUseCase(repo, logger.NewNop())

	_, err := uc.Process(context.Background(), movement("stock_in", 15))
	if !errors.Is(err, transaction.ErrOverstock) {
		t.Fatalf("expected ErrOverstock, got %v", err)
	}

	if got := repo.state.qty[key("1", "1")]; got != 10 {
		t.Errorf("quantity changed on rejected movement: %d", got)
	}
	if len(repo.state.log) != 0 {
		t.Errorf("movement logged on rejected stock_in")
	}
	if repo.rollbacks != 1 || repo.commits != 0 {
		t.Errorf("expected 1 rollback and 0 commits, got %d/%d", repo.rollbacks, repo.commits)
	}
}

func TestSellAboveMinimum(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 5
	repo.state.policies[key("1", "1")] = policy{min: 3, max: 100}
	uc := NewMovementUseCase(repo, logger.NewNop())

	if _, err := uc.Process(context.Background(), movement("sell", 3)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if got := repo.state.qty[key("1", "1")]; got != 2 {
		t.Errorf("expected quantity 2, got %d", got)
	}
}

func TestSellStockoutRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 5
	repo.state.policies[key("1", "1")] = policy{min: 3, max: 100}
	uc := NewMovementUseCase(repo, logger.NewNop())

	_, err := uc.Process(context.Background(), movement("sell", 4))
	if !errors.Is(err, transaction.ErrStockout) {
		t.Fatalf("expected ErrStockout, got %v", err)
	}
	if got := repo.state.qty[key("1", "1")]; got != 5 {
		t.Errorf("quantity changed on rejected sell: %d", got)
	}
}

func TestRemoveInsufficientQuantity(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 4
	uc := NewMovementUseCase(repo, logger.NewNop())

	_, err := uc.Process(context.Background(), movement("remove", 10))
	if !errors.Is(err, transaction.ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
	if got := repo.state.qty[key("1", "1")]; got != 4 {
		t.Errorf("quantity changed on rejected remove: %d", got)
	}
}

func TestRemoveMissingInventory(t *testing.T) {
	repo := newFakeRepo()
	uc := NewMovementUseCase(repo, logger.NewNop())

	input := movement("remove", 1)
	input.StoreID, input.ProductID = "9", "9"

	_, err := uc.Process(context.Background(), input)
	if !errors.Is(err, transaction.ErrInventoryNotFound) {
		t.Fatalf("expected ErrInventoryNotFound, got %v", err)
	}
}

func TestRemoveExactQuantity(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 4
	uc := NewMovementUseCase(repo, logger.NewNop())

	if _, err := uc.Process(context.Background(), movement("remove", 4)); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got := repo.state.qty[key("1", "1")]; got != 0 {
		t.Errorf("expected quantity 0, got %d", got)
	}
}

func TestNoPolicyRowNeverBlocks(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	uc := NewMovementUseCase(repo, logger.NewNop())

	if _, err := uc.Process(context.Background(), movement("stock_in", 1_000_000)); err != nil {
		t.Fatalf("stock_in without policy row rejected: %v", err)
	}
	if _, err := uc.Process(context.Background(), movement("sell", 1_000_000)); err != nil {
		t.Fatalf("sell without policy row rejected: %v", err)
	}
}

func TestUnsupportedMovementType(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	uc := NewMovementUseCase(repo, logger.NewNop())

	_, err := uc.Process(context.Background(), movement("transfer", 1))
	if !errors.Is(err, transaction.ErrUnsupportedMovement) {
		t.Fatalf("expected ErrUnsupportedMovement, got %v", err)
	}
	if got := repo.state.qty[key("1", "1")]; got != 10 {
		t.Errorf("quantity changed on unsupported movement: %d", got)
	}
}

func TestRejectionIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	repo.state.policies[key("1", "1")] = policy{min: 0, max: 20}
	uc := NewMovementUseCase(repo, logger.NewNop())

	for i := 0; i < 2; i++ {
		_, err := uc.Process(context.Background(), movement("stock_in", 15))
		if !errors.Is(err, transaction.ErrOverstock) {
			t.Fatalf("call %d: expected ErrOverstock, got %v", i+1, err)
		}
	}
	if got := repo.state.qty[key("1", "1")]; got != 10 {
		t.Errorf("repeated rejections mutated quantity: %d", got)
	}
	if len(repo.state.log) != 0 {
		t.Errorf("repeated rejections appended movements")
	}
}

func TestStorageFaultRollsBack(t *testing.T) {
	repo := newFakeRepo()
	repo.state.qty[key("1", "1")] = 10
	repo.appendErr = errors.New("connection reset")
	uc := NewMovementUseCase(repo, logger.NewNop())

	_, err := uc.Process(context.Background(), movement("stock_in", 5))
	if err == nil {
		t.Fatal("expected error from storage fault")
	}
	if errors.Is(err, transaction.ErrOverstock) || errors.Is(err, transaction.ErrStockout) {
		t.Fatalf("storage fault misclassified as business rejection: %v", err)
	}
	if got := repo.state.qty[key("1", "1")]; got != 10 {
		t.Errorf("quantity changed despite rolled-back fault: %d", got)
	}
}

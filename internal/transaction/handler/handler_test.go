package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/model"
	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
)

type stubUseCase struct {
	processErr error
	lastInput  *dto.MovementInput
}

func (s *stubUseCase) Process(ctx context.Context, input *dto.MovementInput) (*model.ProductTransaction, error) {
	s.lastInput = input
	if s.processErr != nil {
		return nil, s.processErr
	}
	return &model.ProductTransaction{
		TransactionID: "t-1",
		StoreID:       input.StoreID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		MovementType:  model.MovementType(input.MovementType),
		UpdatedBy:     input.UpdatedBy,
		SupplierID:    input.SupplierID,
	}, nil
}

func (s *stubUseCase) ListTransactions(ctx context.Context) ([]model.ProductTransaction, error) {
	return nil, nil
}

func (s *stubUseCase) GetTransaction(ctx context.Context, id string) (*model.ProductTransaction, error) {
	return nil, nil
}

func (s *stubUseCase) ListByDate(ctx context.Context, date string) ([]model.ProductTransaction, error) {
	return nil, nil
}

func (s *stubUseCase) Summary(ctx context.Context) (*dto.MovementSummary, error) {
	return &dto.MovementSummary{}, nil
}

func newTestRouter(uc transaction.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler(uc, logger.NewNop())
	h.RegisterRoutes(router.Group("/productTransactions"))
	return router
}

func postMovement(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/productTransactions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func fullBody(movementType string) map[string]interface{} {
	return map[string]interface{}{
		"store_id":      "1",
		"product_id":    "1",
		"quantity":      5,
		"updated_by":    "tester",
		"supplier_id":   "sup-1",
		"movement_type": movementType,
	}
}

func decodeField(t *testing.T, w *httptest.ResponseRecorder, field string) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return body[field]
}

func TestCreateSuccessMessage(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := postMovement(t, router, fullBody("stock_in"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if msg := decodeField(t, w, "message"); msg != "stock_in transaction processed successfully." {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestCreateMissingFieldIsEmptyData(t *testing.T) {
	uc := &stubUseCase{}
	router := newTestRouter(uc)

	for _, missing := range []string{"store_id", "product_id", "quantity", "updated_by", "supplier_id", "movement_type"} {
		body := fullBody("sell")
		delete(body, missing)

		w := postMovement(t, router, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("missing %s: expected 400, got %d", missing, w.Code)
		}
		if msg := decodeField(t, w, "error"); msg != "Empty Data" {
			t.Errorf("missing %s: unexpected error %q", missing, msg)
		}
	}

	if uc.lastInput != nil {
		t.Error("usecase invoked despite missing fields")
	}
}

func TestCreateZeroQuantityIsEmptyData(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	body := fullBody("sell")
	body["quantity"] = 0

	w := postMovement(t, router, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeField(t, w, "error"); msg != "Empty Data" {
		t.Errorf("unexpected error %q", msg)
	}
}

func TestCreateRejectionResponses(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"overstock", transaction.ErrOverstock, http.StatusBadRequest, "Overstocking would occur. Transaction aborted."},
		{"stockout", transaction.ErrStockout, http.StatusBadRequest, "Stock is below minimum quantity. Please reorder."},
		{"not found", transaction.ErrInventoryNotFound, http.StatusNotFound, "Inventory item not found."},
		{"insufficient", transaction.ErrInsufficientQuantity, http.StatusBadRequest, "Not enough quantity in inventory to remove."},
		{"unsupported", transaction.ErrUnsupportedMovement, http.StatusBadRequest, "Invalid movement_type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubUseCase{processErr: tc.err})

			w := postMovement(t, router, fullBody("sell"))
			if w.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if msg := decodeField(t, w, "error"); msg != tc.wantError {
				t.Errorf("expected %q, got %q", tc.wantError, msg)
			}
		})
	}
}

func TestCreateStorageFaultIsGeneric(t *testing.T) {
	router := newTestRouter(&stubUseCase{processErr: context.DeadlineExceeded})

	w := postMovement(t, router, fullBody("sell"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decodeField(t, w, "error"); msg != "Transaction failed." {
		t.Errorf("internal detail leaked: %q", msg)
	}
}

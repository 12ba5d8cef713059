package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/transaction"
	"github.com/samaansync/inventory-service/internal/transaction/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	uc     transaction.UseCase
	logger logger.ZapLogger
}

func NewTransactionHandler(uc transaction.UseCase, log logger.ZapLogger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/transaction", h.GetByID)
	rg.GET("/by-date", h.ListByDate)
	rg.GET("/transaction-summary", h.Summary)
	rg.POST("", h.Create)
}

type createTransactionRequest struct {
	StoreID      string `json:"store_id" binding:"required"`
	ProductID    string `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	UpdatedBy    string `json:"updated_by" binding:"required"`
	SupplierID   string `json:"supplier_id" binding:"required"`
	MovementType string `json:"movement_type" binding:"required"`
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty Data"})
		return
	}

	rec, err := h.uc.Process(c.Request.Context(), &dto.MovementInput{
		StoreID:      req.StoreID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		UpdatedBy:    req.UpdatedBy,
		SupplierID:   req.SupplierID,
		MovementType: req.MovementType,
	})
	if err != nil {
		h.rejectMovement(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s transaction processed successfully.", rec.MovementType),
	})
}

// rejectMovement maps each business rejection to its response; unexpected
// faults are logged and reported without internal detail.
func (h *TransactionHandler) rejectMovement(c *gin.Context, err error) {
	switch {
	case errors.Is(err, transaction.ErrOverstock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Overstocking would occur. Transaction aborted."})
	case errors.Is(err, transaction.ErrStockout):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock is below minimum quantity. Please reorder."})
	case errors.Is(err, transaction.ErrInventoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found."})
	case errors.Is(err, transaction.ErrInsufficientQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough quantity in inventory to remove."})
	case errors.Is(err, transaction.ErrUnsupportedMovement):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movement_type"})
	default:
		h.logger.Error("transaction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction failed."})
	}
}

func (h *TransactionHandler) List(c *gin.Context) {
	items, err := h.uc.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	transactionID := c.GetHeader("transaction_id")
	if transactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required in headers"})
		return
	}

	item, err := h.uc.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		h.logger.Error("failed to fetch transaction", zap.String("transaction_id", transactionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *TransactionHandler) ListByDate(c *gin.Context) {
	date := c.GetHeader("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required in headers (YYYY-MM-DD)"})
		return
	}

	items, err := h.uc.ListByDate(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("failed to list transactions by date", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	summary, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch stock summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stock summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

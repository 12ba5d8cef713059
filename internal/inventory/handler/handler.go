package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/inventory"
	"github.com/samaansync/inventory-service/internal/inventory/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/item", h.GetItem)
	rg.GET("/status", h.GetStoreStatus)
	rg.POST("", h.Create)
	rg.POST("/update", h.UpdateQuantity)
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.uc.ListInventory(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	inventoryID := c.GetHeader("inventory_id")
	storeID := c.GetHeader("store_id")
	if inventoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Inventory ID is required in the header"})
		return
	}

	inv, err := h.uc.GetItem(c.Request.Context(), inventoryID, storeID)
	if err != nil {
		h.logger.Error("failed to fetch inventory item", zap.String("inventory_id", inventoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InventoryHandler) GetStoreStatus(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Store ID is required in the header"})
		return
	}

	inv, err := h.uc.GetStoreStatus(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("failed to fetch store inventory status", zap.String("store_id", storeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

type createInventoryRequest struct {
	StoreID         string `json:"store_id" binding:"required"`
	ProductID       string `json:"product_id" binding:"required"`
	CurrentQuantity int    `json:"current_quantity"`
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req createInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "store_id and product_id are required"})
		return
	}

	inv, err := h.uc.CreateRecord(c.Request.Context(), &dto.CreateInventoryInput{
		StoreID:         req.StoreID,
		ProductID:       req.ProductID,
		CurrentQuantity: req.CurrentQuantity,
	})
	if err != nil {
		if errors.Is(err, inventory.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Record already exists for product %s in store %s.", req.ProductID, req.StoreID),
			})
			return
		}
		h.logger.Error("failed to create inventory record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

type updateQuantityRequest struct {
	CurrentQuantity int `json:"current_quantity"`
}

func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	inventoryID := c.GetHeader("inventory_id")
	if inventoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Inventory ID is required in the header"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "current_quantity is required"})
		return
	}

	inv, err := h.uc.UpdateQuantity(c.Request.Context(), inventoryID, req.CurrentQuantity)
	if err != nil {
		h.logger.Error("failed to update inventory quantity", zap.String("inventory_id", inventoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inventory not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

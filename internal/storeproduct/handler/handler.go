package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/storeproduct"
	"github.com/samaansync/inventory-service/internal/storeproduct/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type StoreProductHandler struct {
	uc     storeproduct.UseCase
	logger logger.ZapLogger
}

func NewStoreProductHandler(uc storeproduct.UseCase, log logger.ZapLogger) *StoreProductHandler {
	return &StoreProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StoreProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/product", h.Get)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func (h *StoreProductHandler) List(c *gin.Context) {
	records, err := h.uc.ListStoreProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list store products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *StoreProductHandler) Get(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	productID := c.GetHeader("product_id")
	if storeID == "" || productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id and product_id are required in headers"})
		return
	}

	sp, err := h.uc.GetStoreProduct(c.Request.Context(), storeID, productID)
	if err != nil {
		h.logger.Error("failed to fetch store product",
			zap.String("store_id", storeID), zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if sp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in store"})
		return
	}
	c.JSON(http.StatusOK, sp)
}

// min_quantity and max_quantity are pointers so a present zero is
// distinguishable from an omitted field.
type storeProductRequest struct {
	StoreID     string `json:"store_id"`
	ProductID   string `json:"product_id"`
	MinQuantity *int   `json:"min_quantity"`
	MaxQuantity *int   `json:"max_quantity"`
	IsActive    string `json:"is_active"`
}

func (h *StoreProductHandler) Create(c *gin.Context) {
	var req storeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.StoreID == "" || req.ProductID == "" || req.MinQuantity == nil || req.MaxQuantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id, product_id, min_quantity, and max_quantity are required"})
		return
	}
	isActive := req.IsActive
	if isActive == "" {
		isActive = "Y"
	}

	sp, err := h.uc.CreateStoreProduct(c.Request.Context(), &dto.StoreProductInput{
		StoreID:     req.StoreID,
		ProductID:   req.ProductID,
		MinQuantity: *req.MinQuantity,
		MaxQuantity: *req.MaxQuantity,
		IsActive:    isActive,
	})
	if err != nil {
		if errors.Is(err, storeproduct.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Store-product relationship already exists"})
			return
		}
		h.logger.Error("failed to create store product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *StoreProductHandler) Update(c *gin.Context) {
	storeID := c.GetHeader("store_id")

	var req storeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = storeProductRequest{}
	}
	productID := c.GetHeader("product_id")
	if productID == "" {
		productID = req.ProductID
	}

	if storeID == "" || productID == "" || req.MinQuantity == nil || req.MaxQuantity == nil || req.IsActive == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id (in header), product_id, min_quantity, max_quantity, and is_active are required"})
		return
	}
	if req.IsActive != "Y" && req.IsActive != "N" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	sp, err := h.uc.UpdateStoreProduct(c.Request.Context(), &dto.StoreProductInput{
		StoreID:     storeID,
		ProductID:   productID,
		MinQuantity: *req.MinQuantity,
		MaxQuantity: *req.MaxQuantity,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.logger.Error("failed to update store product",
			zap.String("store_id", storeID), zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if sp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store-product entry not found"})
		return
	}
	c.JSON(http.StatusOK, sp)
}

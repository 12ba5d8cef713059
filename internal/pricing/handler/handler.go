package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/pricing"
	"github.com/samaansync/inventory-service/internal/pricing/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type PricingHandler struct {
	uc     pricing.UseCase
	logger logger.ZapLogger
}

func NewPricingHandler(uc pricing.UseCase, log logger.ZapLogger) *PricingHandler {
	return &PricingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PricingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/item", h.Get)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func (h *PricingHandler) List(c *gin.Context) {
	records, err := h.uc.ListPricing(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list pricing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *PricingHandler) Get(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	productID := c.GetHeader("product_id")
	if storeID == "" || productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "store_id and product_id are required in the headers"})
		return
	}

	p, err := h.uc.GetPricing(c.Request.Context(), storeID, productID)
	if err != nil {
		h.logger.Error("failed to fetch pricing",
			zap.String("store_id", storeID), zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type createPricingRequest struct {
	StoreID   string  `json:"store_id"`
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
	UpdatedBy string  `json:"updated_by"`
	IsActive  string  `json:"is_active"`
}

func (h *PricingHandler) Create(c *gin.Context) {
	var req createPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.StoreID == "" || req.ProductID == "" || req.Price == 0 || req.UpdatedBy == "" || req.IsActive == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id, product_id, price, updated_by and is_active are required"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
		return
	}

	p, err := h.uc.CreatePricing(c.Request.Context(), &dto.CreatePricingInput{
		StoreID:   req.StoreID,
		ProductID: req.ProductID,
		Price:     req.Price,
		UpdatedBy: req.UpdatedBy,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Pricing record already exists for this store and product"})
		case errors.Is(err, pricing.ErrInvalidRef):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store_id or product_id, record does not exist in store_products"})
		default:
			h.logger.Error("failed to create pricing record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updatePricingRequest struct {
	Price     float64 `json:"price"`
	UpdatedBy string  `json:"updated_by"`
}

func (h *PricingHandler) Update(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	productID := c.GetHeader("product_id")
	if storeID == "" || productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id and product_id are required in headers"})
		return
	}

	var req updatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Price == 0 || req.UpdatedBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and updated_by are required"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a positive number"})
		return
	}

	p, err := h.uc.UpdatePricing(c.Request.Context(), &dto.UpdatePricingInput{
		StoreID:   storeID,
		ProductID: productID,
		Price:     req.Price,
		UpdatedBy: req.UpdatedBy,
	})
	if err != nil {
		h.logger.Error("failed to update pricing",
			zap.String("store_id", storeID), zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing record not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

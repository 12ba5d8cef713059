package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/store"
	"github.com/samaansync/inventory-service/internal/store/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type StoreHandler struct {
	uc     store.UseCase
	logger logger.ZapLogger
}

func NewStoreHandler(uc store.UseCase, log logger.ZapLogger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/store", h.Get)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func validActive(v string) bool {
	return v == "" || v == "Y" || v == "N"
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.uc.ListStores(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list stores", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Get(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required in headers"})
		return
	}

	s, err := h.uc.GetStore(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("failed to fetch store", zap.String("store_id", storeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type createStoreRequest struct {
	StoreID  string `json:"store_id"`
	Name     string `json:"name"`
	IsActive string `json:"is_active"`
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StoreID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id and name are required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	s, err := h.uc.CreateStore(c.Request.Context(), &dto.CreateStoreInput{
		StoreID:  req.StoreID,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Store with this ID or name already exists"})
			return
		}
		h.logger.Error("failed to create store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *StoreHandler) Update(c *gin.Context) {
	storeID := c.GetHeader("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required in headers"})
		return
	}

	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	s, err := h.uc.UpdateStore(c.Request.Context(), &dto.UpdateStoreInput{
		StoreID:  storeID,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.Error("failed to update store", zap.String("store_id", storeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

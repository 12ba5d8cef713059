package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/category"
	"github.com/samaansync/inventory-service/internal/category/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/item", h.Get)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func validActive(v string) bool {
	return v == "" || v == "Y" || v == "N"
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID := c.GetHeader("category_id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required in headers"})
		return
	}

	cat, err := h.uc.GetCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.logger.Error("failed to fetch category", zap.String("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

type categoryRequest struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	IsActive   string `json:"is_active"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id and name are required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &dto.CreateCategoryInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		IsActive:   req.IsActive,
	})
	if err != nil {
		if errors.Is(err, category.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category with this ID or name already exists"})
			return
		}
		h.logger.Error("failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID := c.GetHeader("category_id")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required in headers"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), &dto.UpdateCategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.logger.Error("failed to update category", zap.String("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

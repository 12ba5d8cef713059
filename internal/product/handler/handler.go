package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/product"
	"github.com/samaansync/inventory-service/internal/product/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/item", h.Get)
	rg.GET("/search", h.Search)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func validActive(v string) bool {
	return v == "" || v == "Y" || v == "N"
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	productID := c.GetHeader("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required in headers"})
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.logger.Error("failed to fetch product", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	products, err := h.uc.SearchProducts(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("product search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type productRequest struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	IsActive   string `json:"is_active"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" || req.Name == "" || req.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id, name, and category_id are required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		ProductID:  req.ProductID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		if errors.Is(err, product.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product with this name or ID already exists"})
			return
		}
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID := c.GetHeader("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required in headers"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category_id are required"})
		return
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ProductID:  productID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.logger.Error("failed to update product", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samaansync/inventory-service/internal/supplier"
	"github.com/samaansync/inventory-service/internal/supplier/dto"
	"github.com/samaansync/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/view", h.Get)
	rg.POST("", h.Create)
	rg.POST("/update", h.Update)
}

func (h *SupplierHandler) RegisterOrderRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListOrders)
	rg.GET("/view", h.GetOrder)
	rg.POST("/supplier-orders", h.PlaceOrder)
	rg.POST("/update", h.UpdateOrder)
}

func validActive(v string) bool {
	return v == "Y" || v == "N"
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.uc.ListSuppliers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list suppliers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	supplierID := c.GetHeader("supplier_id")
	if supplierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id is required in headers"})
		return
	}

	s, err := h.uc.GetSupplier(c.Request.Context(), supplierID)
	if err != nil {
		h.logger.Error("failed to fetch supplier", zap.String("supplier_id", supplierID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type supplierRequest struct {
	SupplierID  string  `json:"supplier_id"`
	Name        string  `json:"name"`
	ContactInfo *string `json:"contact_info"`
	IsActive    string  `json:"is_active"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SupplierID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id and name are required"})
		return
	}
	if req.IsActive == "" {
		req.IsActive = "Y"
	}
	if !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}

	s, err := h.uc.CreateSupplier(c.Request.Context(), &dto.SupplierInput{
		SupplierID:  req.SupplierID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, supplier.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Supplier with this ID or name already exists"})
			return
		}
		h.logger.Error("failed to create supplier", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	supplierID := c.GetHeader("supplier_id")

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = supplierRequest{}
	}
	if supplierID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id (in header) and name are required"})
		return
	}
	if req.IsActive != "" && !validActive(req.IsActive) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be 'Y' or 'N'"})
		return
	}
	if req.IsActive == "" {
		req.IsActive = "Y"
	}

	s, err := h.uc.UpdateSupplier(c.Request.Context(), &dto.SupplierInput{
		SupplierID:  supplierID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.logger.Error("failed to update supplier", zap.String("supplier_id", supplierID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SupplierHandler) ListOrders(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list supplier orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *SupplierHandler) GetOrder(c *gin.Context) {
	orderID := c.GetHeader("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required in headers"})
		return
	}

	o, err := h.uc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Error("failed to fetch supplier order", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type supplierOrderRequest struct {
	SupplierID string  `json:"supplier_id"`
	StoreID    string  `json:"store_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

func (h *SupplierHandler) PlaceOrder(c *gin.Context) {
	var req supplierOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.SupplierID == "" || req.StoreID == "" || req.ProductID == "" || req.Quantity == 0 || req.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier_id, store_id, product_id, quantity, and price are required"})
		return
	}

	_, err := h.uc.PlaceOrder(c.Request.Context(), &dto.SupplierOrderInput{
		SupplierID: req.SupplierID,
		StoreID:    req.StoreID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		h.logger.Error("failed to place supplier order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process supplier order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier order placed successfully"})
}

func (h *SupplierHandler) UpdateOrder(c *gin.Context) {
	orderID := c.GetHeader("order_id")

	var req supplierOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = supplierOrderRequest{}
	}
	if orderID == "" || req.SupplierID == "" || req.ProductID == "" || req.StoreID == "" || req.Quantity == 0 || req.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields including order_id (in headers) are required"})
		return
	}

	o, err := h.uc.UpdateOrder(c.Request.Context(), &dto.SupplierOrderInput{
		OrderID:    orderID,
		SupplierID: req.SupplierID,
		StoreID:    req.StoreID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		h.logger.Error("failed to update supplier order", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier order"})
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Order updated successfully",
		"updatedOrder": o,
	})
}

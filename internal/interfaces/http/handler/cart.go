package handler

import (
	"context"
	"strconv"

	"github.com/ecom/backend/internal/application/cart"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart line management
type CartHandler struct {
	BaseHandler
	service *cart.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *cart.Service) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers cart endpoints
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/cart")
	{
		group.GET("", h.List)
		group.GET("/count", h.Count)
		group.POST("/items", h.Add)
		group.DELETE("/items/:product_id", h.Remove)
		group.POST("/items/:product_id/increment", h.Increment)
		group.POST("/items/:product_id/decrement", h.Decrement)
	}
}

// Add puts a product in the cart, merging quantities on repeat adds
func (h *CartHandler) Add(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.service.Add(c.Request.Context(), customerID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"message": "Item added to cart"})
}

// Remove deletes a cart line
func (h *CartHandler) Remove(c *gin.Context) {
	h.withLine(c, h.service.Remove)
}

// Increment raises a line's quantity by one
func (h *CartHandler) Increment(c *gin.Context) {
	h.withLine(c, h.service.Increment)
}

// Decrement lowers a line's quantity by one, deleting the line at zero
func (h *CartHandler) Decrement(c *gin.Context) {
	h.withLine(c, h.service.Decrement)
}

// List returns the cart with product details
func (h *CartHandler) List(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Count returns the sum of quantities across the customer's lines
func (h *CartHandler) Count(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.service.Count(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// withLine runs a per-line operation keyed by the product_id path param
func (h *CartHandler) withLine(c *gin.Context, op func(ctx context.Context, customerID, productID int64) error) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	if err := op(c.Request.Context(), customerID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Cart updated"})
}

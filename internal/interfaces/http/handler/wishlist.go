package handler

import (
	"strconv"

	"github.com/ecom/backend/internal/application/cart"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// WishlistHandler handles wishlist management
type WishlistHandler struct {
	BaseHandler
	service *cart.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(service *cart.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes registers wishlist endpoints
func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/wishlist")
	{
		group.GET("", h.List)
		group.GET("/count", h.Count)
		group.POST("/items", h.Add)
		group.DELETE("/items/:product_id", h.Remove)
	}
}

// Add puts a product on the wishlist; duplicates are rejected
func (h *WishlistHandler) Add(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req cart.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.service.Add(c.Request.Context(), customerID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"message": "Item added to wishlist"})
}

// Remove deletes a wishlist entry
func (h *WishlistHandler) Remove(c *gin.Context) {
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

	if err := h.service.Remove(c.Request.Context(), customerID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Item removed from wishlist"})
}

// List returns the wishlist with product details
func (h *WishlistHandler) List(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Count returns the number of wishlist entries
func (h *WishlistHandler) Count(c *gin.Context) {
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

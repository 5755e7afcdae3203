package handler

import (
	"strconv"

	"github.com/ecom/backend/internal/application/checkout"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles order placement and order reads
type CheckoutHandler struct {
	BaseHandler
	service *checkout.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RegisterRoutes registers checkout endpoints
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// Checkout places an order from the submitted cart lines
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetOrder returns one of the customer's orders
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders returns the customer's orders, newest first
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

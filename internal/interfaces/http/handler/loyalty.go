package handler

import (
	"github.com/ecom/backend/internal/application/loyalty"
	"github.com/gin-gonic/gin"
)

// LoyaltyHandler handles points redemption and reporting
type LoyaltyHandler struct {
	BaseHandler
	service *loyalty.Service
}

// NewLoyaltyHandler creates a new LoyaltyHandler
func NewLoyaltyHandler(service *loyalty.Service) *LoyaltyHandler {
	return &LoyaltyHandler{service: service}
}

// RegisterRoutes registers loyalty endpoints
func (h *LoyaltyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/loyalty")
	{
		group.GET("/points", h.Points)
		group.POST("/redeem", h.Redeem)
	}
}

// Redeem spends points for a tiered discount
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req loyalty.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.Redeem(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Points returns the customer's balance and history
func (h *LoyaltyHandler) Points(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.service.Points(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

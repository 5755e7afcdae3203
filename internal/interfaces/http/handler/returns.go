package handler

import (
	"github.com/ecom/backend/internal/application/returns"
	"github.com/gin-gonic/gin"
)

// ReturnsHandler handles return requests
type ReturnsHandler struct {
	BaseHandler
	service *returns.Service
}

// NewReturnsHandler creates a new ReturnsHandler
func NewReturnsHandler(service *returns.Service) *ReturnsHandler {
	return &ReturnsHandler{service: service}
}

// RegisterRoutes registers return endpoints
func (h *ReturnsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/returns")
	{
		group.POST("", h.Submit)
		group.GET("", h.List)
	}
}

// Submit files a return request for an order item
func (h *ReturnsHandler) Submit(c *gin.Context) {
	if _, err := getCustomerID(c); err != nil {
		h.HandleError(c, err)
		return
	}

	var req returns.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns the customer's return requests
func (h *ReturnsHandler) List(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	list, err := h.service.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

package checkout

import (
	"time"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest is one cart line submitted for checkout
type CheckoutItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required,gt=0"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// CheckoutRequest is the payload for placing an order
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	Address       string                `json:"address" binding:"required"`
	PaymentMethod string                `json:"payment_method" binding:"required"`
	TransactionID string                `json:"transaction_id"`
}

// CheckoutResult is returned after a successful checkout
type CheckoutResult struct {
	Message        string          `json:"message"`
	OrderID        int64           `json:"order_id"`
	TrackingNumber int64           `json:"tracking_number"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	LoyaltyPoints  int64           `json:"loyalty_points"`
}

// OrderItemResponse is one line of an order in API responses
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          int64               `json:"id"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	TotalTax    decimal.Decimal     `json:"total_tax"`
	PaymentID   *int64              `json:"payment_id,omitempty"`
	Items       []OrderItemResponse `json:"items"`
}

// ToOrderResponse maps a domain order to its API representation
func ToOrderResponse(order *checkout.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:          order.ID,
		OrderDate:   order.OrderDate,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		TotalTax:    order.TotalTax,
		PaymentID:   order.PaymentID,
		Items:       make([]OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}

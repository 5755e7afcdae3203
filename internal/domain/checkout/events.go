package checkout

import (
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types published by the checkout domain
const (
	EventTypeOrderPlaced = "checkout.order_placed"
)

// OrderPlacedEvent is raised after an order and all of its companion
// records have been committed.
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PointsEarned int64           `json:"points_earned"`
}

// NewOrderPlacedEvent creates an OrderPlacedEvent from a persisted order
func NewOrderPlacedEvent(order *Order, pointsEarned int64) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, "Order", order.ID),
		OrderID:         order.ID,
		CustomerID:      order.CustomerID,
		TotalAmount:     order.TotalAmount,
		PointsEarned:    pointsEarned,
	}
}

package loyalty

import (
	"context"
	"fmt"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderPlacedHandler credits loyalty points when an order is placed.
// It subscribes to checkout events; accrual failures here are logged
// by the bus and never affect the already-committed order.
type OrderPlacedHandler struct {
	service *Service
	logger  *zap.Logger
}

// NewOrderPlacedHandler creates a handler backed by the loyalty service
func NewOrderPlacedHandler(service *Service, logger *zap.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{service: service, logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{checkout.EventTypeOrderPlaced}
}

// Handle credits the points computed at checkout time
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placed, ok := event.(*checkout.OrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.EventType())
	}
	if placed.PointsEarned <= 0 {
		return nil
	}

	if err := h.service.Accrue(ctx, placed.CustomerID, placed.PointsEarned); err != nil {
		return fmt.Errorf("accrue points for order %d: %w", placed.OrderID, err)
	}

	h.logger.Info("loyalty points accrued",
		zap.Int64("customer_id", placed.CustomerID),
		zap.Int64("order_id", placed.OrderID),
		zap.Int64("points", placed.PointsEarned))
	return nil
}

var _ shared.EventHandler = (*OrderPlacedHandler)(nil)

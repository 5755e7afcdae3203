package checkout

import (
	"context"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/domain/loyalty"
	"github.com/ecom/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service orchestrates order placement. It resolves tax rates, prices
// the order, persists every record of the placement atomically through
// the repository, then announces the order on the event bus.
type Service struct {
	orders         checkout.Repository
	taxes          checkout.TaxRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	locks          *customerLocks
}

// NewService creates a new checkout service
func NewService(orders checkout.Repository, taxes checkout.TaxRepository, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		taxes:  taxes,
		logger: logger,
		locks:  newCustomerLocks(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout places an order from the submitted cart lines. Same-customer
// calls are serialized; different customers proceed concurrently.
func (s *Service) Checkout(ctx context.Context, customerID int64, req CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	s.locks.Lock(customerID)
	defer s.locks.Unlock(customerID)

	lines := make([]checkout.Line, 0, len(req.Items))
	productIDs := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, checkout.Line{
			ProductID: item.ProductID,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
		productIDs = append(productIDs, item.ProductID)
	}

	rates, err := s.taxes.RatesForProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	order, err := checkout.NewOrder(customerID, lines, rates, req.Address, req.PaymentMethod, req.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.PlaceOrder(ctx, order); err != nil {
		s.logger.Error("order placement failed",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return nil, err
	}

	points := loyalty.PointsForAmount(order.TotalAmount)
	s.publishOrderPlaced(ctx, order, points)

	return &CheckoutResult{
		Message:        "Order placed successfully",
		OrderID:        order.ID,
		TrackingNumber: order.TrackingNumber(),
		TotalAmount:    order.TotalAmount,
		TotalTax:       order.TotalTax,
		LoyaltyPoints:  points,
	}, nil
}

// GetOrder returns one of the customer's orders
func (s *Service) GetOrder(ctx context.Context, customerID, orderID int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// ListOrders returns the customer's orders, newest first
func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]*OrderResponse, error) {
	orders, err := s.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out, nil
}

// publishOrderPlaced announces the order after the transaction has
// committed. Delivery is best-effort; a bus failure never fails the
// checkout that already persisted.
func (s *Service) publishOrderPlaced(ctx context.Context, order *checkout.Order, points int64) {
	if s.eventPublisher == nil {
		return
	}
	evt := checkout.NewOrderPlacedEvent(order, points)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Error("failed to publish order placed event",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

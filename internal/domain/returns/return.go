package returns

import (
	"context"
	"time"

	"github.com/ecom/backend/internal/domain/shared"
)

// Status represents the state of a return request
type Status string

// Return request statuses
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is a customer's return request for a purchased order item.
// PaymentID links the request to the payment that would be refunded;
// it is resolved from the item's order at creation time.
type Request struct {
	shared.BaseEntity
	OrderItemID int64
	PaymentID   int64
	Reason      string
	Status      Status
	RequestDate time.Time
}

// Raised when a return cannot be linked to a payment
var (
	ErrNoPayment = shared.NewDomainError("NO_PAYMENT", "No payment is associated with this order")
)

// NewRequest creates a pending return request
func NewRequest(orderItemID, paymentID int64, reason string) *Request {
	return &Request{
		BaseEntity:  shared.NewBaseEntity(),
		OrderItemID: orderItemID,
		PaymentID:   paymentID,
		Reason:      reason,
		Status:      StatusPending,
		RequestDate: time.Now(),
	}
}

// Repository persists return requests
type Repository interface {
	// ResolvePayment finds the payment behind an order item by walking
	// the item to its order. Returns shared.ErrNotFound when the item
	// does not exist and ErrNoPayment when the order has no payment.
	ResolvePayment(ctx context.Context, orderItemID int64) (int64, error)

	// Create inserts a return request
	Create(ctx context.Context, r *Request) error

	// FindByCustomer lists a customer's return requests, newest first
	FindByCustomer(ctx context.Context, customerID int64) ([]Request, error)
}

package checkout

import (
	"fmt"
	"time"

	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

// Order statuses
const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Line is a single priced cart line entering checkout
type Line struct {
	ProductID int64
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns unit price multiplied by quantity
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderItem is a persisted order line with its subtotal snapshot
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Subtotal  decimal.Decimal
}

// Order is the checkout aggregate. It owns the order rows plus the
// shipping, tracking, payment and tax records created alongside them,
// so a single repository call can persist the whole placement.
type Order struct {
	shared.BaseAggregateRoot
	CustomerID  int64
	OrderDate   time.Time
	Status      OrderStatus
	TotalAmount decimal.Decimal
	TotalTax    decimal.Decimal
	PaymentID   *int64
	Items       []OrderItem
	TaxCharges  []TaxCharge
	Shipping    Shipping
	Payment     Payment
}

// NewOrder builds a fully-priced order from the customer's cart lines.
// Tax rates are percentages keyed by product; products without a rate
// are untaxed. The payment transaction reference defaults to a
// timestamp-derived value when the caller does not supply one.
func NewOrder(customerID int64, lines []Line, rates map[int64]decimal.Decimal, address, paymentMethod, transactionID string) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping address is required")
	}

	now := time.Now()
	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		OrderDate:         now,
		Status:            OrderStatusProcessing,
		TotalAmount:       decimal.Zero,
		TotalTax:          decimal.Zero,
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item quantity must be positive")
		}
		if !line.UnitPrice.IsPositive() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item price must be positive")
		}

		subtotal := line.Subtotal()
		order.TotalAmount = order.TotalAmount.Add(subtotal)
		order.Items = append(order.Items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})

		if rate, ok := rates[line.ProductID]; ok && rate.IsPositive() {
			amount := subtotal.Mul(rate).Div(decimal.NewFromInt(100))
			order.TotalTax = order.TotalTax.Add(amount)
			order.TaxCharges = append(order.TaxCharges, TaxCharge{
				ProductID: line.ProductID,
				Rate:      rate,
				Amount:    amount,
			})
		}
	}

	order.TotalAmount = order.TotalAmount.Add(order.TotalTax)

	if transactionID == "" {
		transactionID = fmt.Sprintf("txn_%d", now.UnixMilli())
	}

	order.Shipping = NewShipping(address, now)
	order.Payment = Payment{
		Amount:        order.TotalAmount,
		Method:        PaymentMethodLabel(paymentMethod),
		Status:        PaymentStatusPending,
		TransactionID: transactionID,
	}

	return order, nil
}

// TrackingNumber returns the tracking record ID assigned at persistence
// time, or zero if the order has not been persisted.
func (o *Order) TrackingNumber() int64 {
	return o.Shipping.Tracking.ID
}

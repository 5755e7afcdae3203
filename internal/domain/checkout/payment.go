package checkout

import "github.com/shopspring/decimal"

// PaymentStatus represents the state of a payment
type PaymentStatus string

// Payment statuses
const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Accepted payment methods on the checkout request
const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

// Payment is the payment record created for an order
type Payment struct {
	ID            int64
	OrderID       int64
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatus
	TransactionID string
}

// PaymentMethodLabel maps a request payment method to the label stored
// on the payment record. Unknown methods are stored as given.
func PaymentMethodLabel(method string) string {
	switch method {
	case PaymentMethodCard:
		return "Credit Card"
	case PaymentMethodCOD:
		return "COD"
	default:
		return method
	}
}

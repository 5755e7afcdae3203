package checkout

import "time"

// ShippingStatus represents the state of a shipment
type ShippingStatus string

// Shipping statuses
const (
	ShippingStatusProcessing ShippingStatus = "Processing"
	ShippingStatusShipped    ShippingStatus = "Shipped"
	ShippingStatusDelivered  ShippingStatus = "Delivered"
)

// TrackingStatus represents the state of a tracking record
type TrackingStatus string

// Tracking statuses
const (
	TrackingStatusInTransit TrackingStatus = "In Transit"
	TrackingStatusDelivered TrackingStatus = "Delivered"
)

// TrackingLeadTime is the delivery estimate applied to new shipments
const TrackingLeadTime = 7 * 24 * time.Hour

// Shipping is the shipment record created for an order. TrackingID is
// filled in after the tracking row is persisted; until then it is nil.
type Shipping struct {
	ID         int64
	OrderID    int64
	Address    string
	Status     ShippingStatus
	TrackingID *int64
	Tracking   TrackingInfo
}

// TrackingInfo carries the carrier-facing view of a shipment
type TrackingInfo struct {
	ID                int64
	OrderID           int64
	Status            TrackingStatus
	EstimatedDelivery time.Time
}

// NewShipping creates a shipment in its initial state with a tracking
// record estimated at the standard lead time from now.
func NewShipping(address string, now time.Time) Shipping {
	return Shipping{
		Address: address,
		Status:  ShippingStatusProcessing,
		Tracking: TrackingInfo{
			Status:            TrackingStatusInTransit,
			EstimatedDelivery: now.Add(TrackingLeadTime),
		},
	}
}

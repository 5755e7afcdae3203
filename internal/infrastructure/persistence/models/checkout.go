package models

import (
	"time"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate root.
// Shipment, payment and tax charge rows are separate models because
// they are written in distinct steps of the placement transaction.
type OrderModel struct {
	BaseModel
	CustomerID  int64                `gorm:"not null;index"`
	OrderDate   time.Time            `gorm:"not null"`
	Status      checkout.OrderStatus `gorm:"type:varchar(20);not null"`
	TotalAmount decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	TotalTax    decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentID   *int64               `gorm:"index"`
	Items       []OrderItemModel     `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *checkout.Order {
	order := &checkout.Order{
		CustomerID:  m.CustomerID,
		OrderDate:   m.OrderDate,
		Status:      m.Status,
		TotalAmount: m.TotalAmount,
		TotalTax:    m.TotalTax,
		PaymentID:   m.PaymentID,
		Items:       make([]checkout.OrderItem, len(m.Items)),
	}
	order.BaseEntity = m.BaseModel.ToDomain()
	for i, item := range m.Items {
		order.Items[i] = item.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *checkout.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = o.CustomerID
	m.OrderDate = o.OrderDate
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.TotalTax = o.TotalTax
	m.PaymentID = o.PaymentID
}

// OrderItemModel is the persistence model for order lines
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() checkout.OrderItem {
	return checkout.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Subtotal:  m.Subtotal,
	}
}

// FromDomain populates the persistence model from a domain OrderItem
func (m *OrderItemModel) FromDomain(item checkout.OrderItem) {
	m.ID = item.ID
	m.OrderID = item.OrderID
	m.ProductID = item.ProductID
	m.Quantity = item.Quantity
	m.Subtotal = item.Subtotal
}

// ShipmentModel is the persistence model for shipments
type ShipmentModel struct {
	BaseModel
	OrderID    int64                   `gorm:"not null;index"`
	Address    string                  `gorm:"type:varchar(500);not null"`
	Status     checkout.ShippingStatus `gorm:"type:varchar(20);not null"`
	TrackingID *int64                  `gorm:"index"`
}

// TableName returns the table name for GORM
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ToDomain converts the persistence model to a domain Shipping
func (m *ShipmentModel) ToDomain() checkout.Shipping {
	return checkout.Shipping{
		ID:         m.ID,
		OrderID:    m.OrderID,
		Address:    m.Address,
		Status:     m.Status,
		TrackingID: m.TrackingID,
	}
}

// TrackingModel is the persistence model for tracking records
type TrackingModel struct {
	BaseModel
	OrderID           int64                   `gorm:"not null;index"`
	Status            checkout.TrackingStatus `gorm:"type:varchar(20);not null"`
	EstimatedDelivery time.Time               `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TrackingModel) TableName() string {
	return "tracking_info"
}

// ToDomain converts the persistence model to a domain TrackingInfo
func (m *TrackingModel) ToDomain() checkout.TrackingInfo {
	return checkout.TrackingInfo{
		ID:                m.ID,
		OrderID:           m.OrderID,
		Status:            m.Status,
		EstimatedDelivery: m.EstimatedDelivery,
	}
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	BaseModel
	OrderID       int64                  `gorm:"not null;index"`
	Amount        decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Method        string                 `gorm:"type:varchar(30);not null"`
	Status        checkout.PaymentStatus `gorm:"type:varchar(20);not null"`
	TransactionID string                 `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() checkout.Payment {
	return checkout.Payment{
		ID:            m.ID,
		OrderID:       m.OrderID,
		Amount:        m.Amount,
		Method:        m.Method,
		Status:        m.Status,
		TransactionID: m.TransactionID,
	}
}

// TaxRecordModel is the persistence model for configured tax rates
type TaxRecordModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	ProductID int64           `gorm:"not null;index"`
	TaxType   string          `gorm:"type:varchar(50)"`
	Rate      decimal.Decimal `gorm:"type:decimal(8,4);not null"`
}

// TableName returns the table name for GORM
func (TaxRecordModel) TableName() string {
	return "taxes"
}

// ToDomain converts the persistence model to a domain TaxRecord
func (m *TaxRecordModel) ToDomain() checkout.TaxRecord {
	return checkout.TaxRecord{
		ID:        m.ID,
		ProductID: m.ProductID,
		TaxType:   m.TaxType,
		Rate:      m.Rate,
	}
}

// TaxChargeModel is the per-order tax snapshot
type TaxChargeModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	Rate      decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (TaxChargeModel) TableName() string {
	return "order_taxes"
}

// ToDomain converts the persistence model to a domain TaxCharge
func (m *TaxChargeModel) ToDomain() checkout.TaxCharge {
	return checkout.TaxCharge{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Rate:      m.Rate,
		Amount:    m.Amount,
	}
}

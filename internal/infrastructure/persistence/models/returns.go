package models

import (
	"time"

	"github.com/ecom/backend/internal/domain/returns"
)

// ReturnRequestModel is the persistence model for return requests
type ReturnRequestModel struct {
	BaseModel
	OrderItemID int64          `gorm:"not null;index"`
	PaymentID   int64          `gorm:"not null;index"`
	Reason      string         `gorm:"type:varchar(500);not null"`
	Status      returns.Status `gorm:"type:varchar(20);not null"`
	RequestDate time.Time      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReturnRequestModel) TableName() string {
	return "return_requests"
}

// ToDomain converts the persistence model to a domain Request
func (m *ReturnRequestModel) ToDomain() *returns.Request {
	r := &returns.Request{
		OrderItemID: m.OrderItemID,
		PaymentID:   m.PaymentID,
		Reason:      m.Reason,
		Status:      m.Status,
		RequestDate: m.RequestDate,
	}
	r.BaseEntity = m.BaseModel.ToDomain()
	return r
}

// FromDomain populates the persistence model from a domain Request
func (m *ReturnRequestModel) FromDomain(r *returns.Request) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.OrderItemID = r.OrderItemID
	m.PaymentID = r.PaymentID
	m.Reason = r.Reason
	m.Status = r.Status
	m.RequestDate = r.RequestDate
}

package models

import (
	"github.com/ecom/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for customer accounts
type CustomerModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Contact      string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *customer.Customer {
	c := &customer.Customer{
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Contact:      m.Contact,
		Address:      m.Address,
	}
	c.BaseEntity = m.BaseModel.ToDomain()
	return c
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.PasswordHash = c.PasswordHash
	m.Contact = c.Contact
	m.Address = c.Address
}

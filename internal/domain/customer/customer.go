package customer

import (
	"context"

	"github.com/ecom/backend/internal/domain/shared"
)

// Customer is a registered shopper account
type Customer struct {
	shared.BaseEntity
	Name         string
	Email        string
	PasswordHash string
	Contact      string
	Address      string
}

// Repository persists customer accounts
type Repository interface {
	// Create inserts a new customer. Returns shared.ErrAlreadyExists
	// when the email is taken.
	Create(ctx context.Context, c *Customer) error

	// FindByID loads a customer by ID
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// FindByEmail loads a customer by email
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}

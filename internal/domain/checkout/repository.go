package checkout

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository persists checkout aggregates
type Repository interface {
	// PlaceOrder writes the order, its items, tax charges, shipment,
	// tracking and payment records and clears the customer's cart in a
	// single transaction. Database-assigned IDs are written back onto
	// the aggregate before returning.
	PlaceOrder(ctx context.Context, order *Order) error

	// FindByID loads an order with its items
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindByCustomer lists a customer's orders, newest first
	FindByCustomer(ctx context.Context, customerID int64) ([]Order, error)
}

// TaxRepository looks up configured tax rates
type TaxRepository interface {
	// RatesForProducts returns the tax rate percentage per product ID.
	// Products with no configured rate are absent from the map. A
	// deployment without tax configuration yields an empty map rather
	// than an error.
	RatesForProducts(ctx context.Context, productIDs []int64) (map[int64]decimal.Decimal, error)
}

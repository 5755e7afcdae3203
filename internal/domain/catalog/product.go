package catalog

import (
	"context"

	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *int64
	ImageURL    string
}

// Category groups products for browsing
type Category struct {
	ID   int64
	Name string
}

// Repository provides read access to the catalog
type Repository interface {
	// FindByID loads a product by ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll lists products, optionally filtered by category
	FindAll(ctx context.Context, categoryID *int64) ([]Product, error)

	// Exists reports whether a product with the given ID exists
	Exists(ctx context.Context, id int64) (bool, error)
}

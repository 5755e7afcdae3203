package cart

import (
	"context"

	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/shared"
)

// Service handles cart line management
type Service struct {
	repo     cart.Repository
	products catalog.Repository
}

// NewService creates a new cart service
func NewService(repo cart.Repository, products catalog.Repository) *Service {
	return &Service{repo: repo, products: products}
}

// Add puts a product in the cart, merging quantities when the product
// is already there. Quantity defaults to one.
func (s *Service) Add(ctx context.Context, customerID int64, req AddItemRequest) error {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if err := s.ensureProductExists(ctx, req.ProductID); err != nil {
		return err
	}
	return s.repo.Add(ctx, customerID, req.ProductID, quantity)
}

// Increment raises a line's quantity by one
func (s *Service) Increment(ctx context.Context, customerID, productID int64) error {
	return s.repo.Increment(ctx, customerID, productID)
}

// Decrement lowers a line's quantity by one, removing it at zero
func (s *Service) Decrement(ctx context.Context, customerID, productID int64) error {
	return s.repo.Decrement(ctx, customerID, productID)
}

// Remove deletes a line regardless of its quantity
func (s *Service) Remove(ctx context.Context, customerID, productID int64) error {
	return s.repo.Remove(ctx, customerID, productID)
}

// List returns the cart with product details and a running total
func (s *Service) List(ctx context.Context, customerID int64) (*CartResponse, error) {
	details, err := s.repo.ListDetailed(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(details), nil
}

// Count returns the sum of quantities across the customer's lines
func (s *Service) Count(ctx context.Context, customerID int64) (*CountResponse, error) {
	count, err := s.repo.Count(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CountResponse{Count: count}, nil
}

func (s *Service) ensureProductExists(ctx context.Context, productID int64) error {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}

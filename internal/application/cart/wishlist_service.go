package cart

import (
	"context"

	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/catalog"
	"github.com/ecom/backend/internal/domain/shared"
)

// WishlistService handles wishlist entries. Unlike the cart, adding a
// product twice is a conflict rather than a merge.
type WishlistService struct {
	repo     cart.WishlistRepository
	products catalog.Repository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(repo cart.WishlistRepository, products catalog.Repository) *WishlistService {
	return &WishlistService{repo: repo, products: products}
}

// Add puts a product on the wishlist; duplicates are rejected
func (s *WishlistService) Add(ctx context.Context, customerID int64, req AddWishlistItemRequest) error {
	exists, err := s.products.Exists(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return s.repo.Add(ctx, customerID, req.ProductID)
}

// Remove deletes a wishlist entry
func (s *WishlistService) Remove(ctx context.Context, customerID, productID int64) error {
	return s.repo.Remove(ctx, customerID, productID)
}

// List returns the wishlist with product details
func (s *WishlistService) List(ctx context.Context, customerID int64) ([]WishlistItemResponse, error) {
	details, err := s.repo.ListDetailed(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toWishlistResponse(details), nil
}

// Count returns the number of wishlist entries
func (s *WishlistService) Count(ctx context.Context, customerID int64) (*CountResponse, error) {
	count, err := s.repo.Count(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CountResponse{Count: count}, nil
}

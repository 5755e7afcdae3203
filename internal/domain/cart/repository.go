package cart

import "context"

// Repository persists cart lines
type Repository interface {
	// Add inserts a line or, when the customer already has the
	// product, merges the quantity into the existing line.
	Add(ctx context.Context, customerID, productID int64, quantity int) error

	// Increment raises an existing line's quantity by one. Returns
	// shared.ErrNotFound when the product is not in the cart.
	Increment(ctx context.Context, customerID, productID int64) error

	// Decrement lowers an existing line's quantity by one, removing
	// the line entirely when it would reach zero. Returns
	// shared.ErrNotFound when the product is not in the cart.
	Decrement(ctx context.Context, customerID, productID int64) error

	// Remove deletes a line regardless of quantity
	Remove(ctx context.Context, customerID, productID int64) error

	// ListDetailed returns the customer's cart joined with product data
	ListDetailed(ctx context.Context, customerID int64) ([]ItemDetail, error)

	// Count returns the sum of quantities across the customer's lines
	Count(ctx context.Context, customerID int64) (int64, error)

	// Clear removes every line in the customer's cart
	Clear(ctx context.Context, customerID int64) error
}

// WishlistRepository persists wishlist entries
type WishlistRepository interface {
	// Add inserts an entry. Returns shared.ErrAlreadyExists when the
	// customer already has the product on their wishlist.
	Add(ctx context.Context, customerID, productID int64) error

	// Remove deletes an entry
	Remove(ctx context.Context, customerID, productID int64) error

	// ListDetailed returns the wishlist joined with product data
	ListDetailed(ctx context.Context, customerID int64) ([]WishlistItemDetail, error)

	// Count returns the number of entries on the customer's wishlist
	Count(ctx context.Context, customerID int64) (int64, error)
}

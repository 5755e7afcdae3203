package cart

import (
	"github.com/shopspring/decimal"
)

// Item is a cart line for one product. A customer has at most one
// line per product; adding the same product again merges quantities.
type Item struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
}

// ItemDetail is a cart line joined with its product for display
type ItemDetail struct {
	Item
	ProductName string
	UnitPrice   decimal.Decimal
	Description string
}

// WishlistItem marks a product a customer has saved for later.
// Unlike cart lines, wishlist entries carry no quantity and adding a
// duplicate is rejected.
type WishlistItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
}

// WishlistItemDetail is a wishlist entry joined with its product
type WishlistItemDetail struct {
	WishlistItem
	ProductName string
	UnitPrice   decimal.Decimal
	Description string
}

package models

import (
	"github.com/ecom/backend/internal/domain/cart"
)

// CartItemModel is the persistence model for cart lines
type CartItemModel struct {
	BaseModel
	CustomerID int64 `gorm:"not null;uniqueIndex:idx_cart_customer_product,priority:1"`
	ProductID  int64 `gorm:"not null;uniqueIndex:idx_cart_customer_product,priority:2"`
	Quantity   int   `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain cart Item
func (m *CartItemModel) ToDomain() cart.Item {
	return cart.Item{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
}

// WishlistItemModel is the persistence model for wishlist entries
type WishlistItemModel struct {
	BaseModel
	CustomerID int64 `gorm:"not null;uniqueIndex:idx_wishlist_customer_product,priority:1"`
	ProductID  int64 `gorm:"not null;uniqueIndex:idx_wishlist_customer_product,priority:2"`
}

// TableName returns the table name for GORM
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ToDomain converts the persistence model to a domain WishlistItem
func (m *WishlistItemModel) ToDomain() cart.WishlistItem {
	return cart.WishlistItem{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
	}
}

package cart

import (
	"github.com/ecom/backend/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// AddItemRequest is the payload for adding a product to the cart.
// Quantity defaults to one when omitted.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"omitempty,gt=0"`
}

// AddWishlistItemRequest is the payload for adding a wishlist entry
type AddWishlistItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
}

// ItemResponse is a cart line with product details
type ItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse is the customer's full cart
type CartResponse struct {
	Items []ItemResponse  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// WishlistItemResponse is a wishlist entry with product details
type WishlistItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CountResponse reports an aggregate count
type CountResponse struct {
	Count int64 `json:"count"`
}

func toCartResponse(details []cart.ItemDetail) *CartResponse {
	resp := &CartResponse{
		Items: make([]ItemResponse, 0, len(details)),
		Total: decimal.Zero,
	}
	for _, d := range details {
		subtotal := d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
		resp.Items = append(resp.Items, ItemResponse{
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Description: d.Description,
			UnitPrice:   d.UnitPrice,
			Quantity:    d.Quantity,
			Subtotal:    subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp
}

func toWishlistResponse(details []cart.WishlistItemDetail) []WishlistItemResponse {
	out := make([]WishlistItemResponse, 0, len(details))
	for _, d := range details {
		out = append(out, WishlistItemResponse{
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Description: d.Description,
			UnitPrice:   d.UnitPrice,
		})
	}
	return out
}

package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWishlistRepository implements cart.WishlistRepository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GormWishlistRepository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Add inserts a wishlist entry. Duplicates surface as a conflict
// rather than merging, unlike cart lines. The unique index on
// (customer_id, product_id) is the sole authority, so concurrent adds
// of the same product cannot race past a read-then-insert check.
func (r *GormWishlistRepository) Add(ctx context.Context, customerID, productID int64) error {
	item := models.WishlistItemModel{
		CustomerID: customerID,
		ProductID:  productID,
	}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Remove deletes a wishlist entry
func (r *GormWishlistRepository) Remove(ctx context.Context, customerID, productID int64) error {
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.WishlistItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListDetailed returns the wishlist joined with product data
func (r *GormWishlistRepository) ListDetailed(ctx context.Context, customerID int64) ([]cart.WishlistItemDetail, error) {
	var rows []struct {
		models.WishlistItemModel
		ProductName string
		UnitPrice   decimal.Decimal
		Description string
	}
	err := r.db.WithContext(ctx).
		Table("wishlist_items").
		Select("wishlist_items.*, products.name AS product_name, products.price AS unit_price, products.description AS description").
		Joins("JOIN products ON products.id = wishlist_items.product_id").
		Where("wishlist_items.customer_id = ?", customerID).
		Order("wishlist_items.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]cart.WishlistItemDetail, len(rows))
	for i, row := range rows {
		details[i] = cart.WishlistItemDetail{
			WishlistItem: row.WishlistItemModel.ToDomain(),
			ProductName:  row.ProductName,
			UnitPrice:    row.UnitPrice,
			Description:  row.Description,
		}
	}
	return details, nil
}

// Count returns the number of entries on the customer's wishlist
func (r *GormWishlistRepository) Count(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WishlistItemModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormWishlistRepository implements cart.WishlistRepository
var _ cart.WishlistRepository = (*GormWishlistRepository)(nil)

package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/cart"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add inserts a cart line, merging the quantity into an existing line
// when the customer already has the product. The merge rides on the
// (customer_id, product_id) unique index.
func (r *GormCartRepository) Add(ctx context.Context, customerID, productID int64, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	item := models.CartItemModel{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&item).Error
}

// Increment raises an existing line's quantity by one
func (r *GormCartRepository) Increment(ctx context.Context, customerID, productID int64) error {
	result := r.db.WithContext(ctx).Model(&models.CartItemModel{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Update("quantity", gorm.Expr("quantity + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Decrement lowers an existing line's quantity by one. A line at
// quantity one is deleted rather than left at zero.
func (r *GormCartRepository) Decrement(ctx context.Context, customerID, productID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItemModel
		err := tx.Where("customer_id = ? AND product_id = ?", customerID, productID).
			First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if item.Quantity <= 1 {
			return tx.Delete(&models.CartItemModel{}, "id = ?", item.ID).Error
		}
		return tx.Model(&models.CartItemModel{}).
			Where("id = ?", item.ID).
			Update("quantity", gorm.Expr("quantity - 1")).Error
	})
}

// Remove deletes a line regardless of quantity
func (r *GormCartRepository) Remove(ctx context.Context, customerID, productID int64) error {
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListDetailed returns the customer's cart joined with product data
func (r *GormCartRepository) ListDetailed(ctx context.Context, customerID int64) ([]cart.ItemDetail, error) {
	var rows []struct {
		models.CartItemModel
		ProductName string
		UnitPrice   decimal.Decimal
		Description string
	}
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.*, products.name AS product_name, products.price AS unit_price, products.description AS description").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.customer_id = ?", customerID).
		Order("cart_items.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]cart.ItemDetail, len(rows))
	for i, row := range rows {
		details[i] = cart.ItemDetail{
			Item:        row.CartItemModel.ToDomain(),
			ProductName: row.ProductName,
			UnitPrice:   row.UnitPrice,
			Description: row.Description,
		}
	}
	return details, nil
}

// Count returns the sum of quantities across the customer's lines
func (r *GormCartRepository) Count(ctx context.Context, customerID int64) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&models.CartItemModel{}).
		Where("customer_id = ?", customerID).
		Select("SUM(quantity)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// Clear removes every line in the customer's cart
func (r *GormCartRepository) Clear(ctx context.Context, customerID int64) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&models.CartItemModel{}).Error
}

// Ensure GormCartRepository implements cart.Repository
var _ cart.Repository = (*GormCartRepository)(nil)

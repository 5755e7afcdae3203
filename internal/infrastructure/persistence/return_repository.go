package persistence

import (
	"context"
	"errors"

	"github.com/ecom/backend/internal/domain/returns"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReturnRepository implements returns.Repository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// ResolvePayment walks an order item to its order and returns the
// linked payment ID. Orders placed before the payment link-back
// completed have a NULL payment_id; those cannot be returned.
func (r *GormReturnRepository) ResolvePayment(ctx context.Context, orderItemID int64) (int64, error) {
	var row struct {
		PaymentID *int64
	}
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("orders.payment_id AS payment_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ?", orderItemID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, shared.ErrNotFound
		}
		return 0, err
	}
	if row.PaymentID == nil {
		return 0, returns.ErrNoPayment
	}
	return *row.PaymentID, nil
}

// Create inserts a return request
func (r *GormReturnRepository) Create(ctx context.Context, req *returns.Request) error {
	model := &models.ReturnRequestModel{}
	model.FromDomain(req)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	req.ID = model.ID
	req.CreatedAt = model.CreatedAt
	req.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByCustomer lists a customer's return requests, newest first.
// Customer ownership goes through the order the returned item belongs to.
func (r *GormReturnRepository) FindByCustomer(ctx context.Context, customerID int64) ([]returns.Request, error) {
	var rows []models.ReturnRequestModel
	err := r.db.WithContext(ctx).
		Table("return_requests").
		Select("return_requests.*").
		Joins("JOIN order_items ON order_items.id = return_requests.order_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer_id = ?", customerID).
		Order("return_requests.request_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	requests := make([]returns.Request, len(rows))
	for i := range rows {
		requests[i] = *rows[i].ToDomain()
	}
	return requests, nil
}

// Ensure GormReturnRepository implements returns.Repository
var _ returns.Repository = (*GormReturnRepository)(nil)

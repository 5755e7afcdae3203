package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements checkout.Repository using GORM
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewGormCheckoutRepository creates a new GormCheckoutRepository
func NewGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// PlaceOrder persists the whole checkout aggregate in one transaction.
// The write order matters: the shipment row exists before its tracking
// row, and both link-backs (shipment->tracking, order->payment) happen
// after the linked row has an ID. Any failure rolls back every step,
// including the cart clear.
func (r *GormCheckoutRepository) PlaceOrder(ctx context.Context, order *checkout.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderModel := &models.OrderModel{}
		orderModel.FromDomain(order)
		orderModel.ID = 0
		if err := tx.Create(orderModel).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if len(order.TaxCharges) > 0 {
			charges := make([]models.TaxChargeModel, len(order.TaxCharges))
			for i, c := range order.TaxCharges {
				charges[i] = models.TaxChargeModel{
					OrderID:   orderModel.ID,
					ProductID: c.ProductID,
					Rate:      c.Rate,
					Amount:    c.Amount,
				}
			}
			if err := tx.Create(&charges).Error; err != nil {
				return fmt.Errorf("record tax charges: %w", err)
			}
			for i := range charges {
				order.TaxCharges[i].ID = charges[i].ID
				order.TaxCharges[i].OrderID = orderModel.ID
			}
		}

		shipment := &models.ShipmentModel{
			OrderID: orderModel.ID,
			Address: order.Shipping.Address,
			Status:  order.Shipping.Status,
		}
		if err := tx.Create(shipment).Error; err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		tracking := &models.TrackingModel{
			OrderID:           orderModel.ID,
			Status:            order.Shipping.Tracking.Status,
			EstimatedDelivery: order.Shipping.Tracking.EstimatedDelivery,
		}
		if err := tx.Create(tracking).Error; err != nil {
			return fmt.Errorf("create tracking: %w", err)
		}

		if err := tx.Model(&models.ShipmentModel{}).
			Where("id = ?", shipment.ID).
			Update("tracking_id", tracking.ID).Error; err != nil {
			return fmt.Errorf("link tracking to shipment: %w", err)
		}

		payment := &models.PaymentModel{
			OrderID:       orderModel.ID,
			Amount:        order.Payment.Amount,
			Method:        order.Payment.Method,
			Status:        order.Payment.Status,
			TransactionID: order.Payment.TransactionID,
		}
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		if err := tx.Model(&models.OrderModel{}).
			Where("id = ?", orderModel.ID).
			Update("payment_id", payment.ID).Error; err != nil {
			return fmt.Errorf("link payment to order: %w", err)
		}

		items := make([]models.OrderItemModel, len(order.Items))
		for i, item := range order.Items {
			items[i] = models.OrderItemModel{
				OrderID:   orderModel.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal,
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		if err := tx.Where("customer_id = ?", order.CustomerID).
			Delete(&models.CartItemModel{}).Error; err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		// Write assigned IDs back onto the aggregate
		order.ID = orderModel.ID
		order.CreatedAt = orderModel.CreatedAt
		order.UpdatedAt = orderModel.UpdatedAt
		order.PaymentID = &payment.ID
		order.Payment.ID = payment.ID
		order.Payment.OrderID = orderModel.ID
		order.Shipping.ID = shipment.ID
		order.Shipping.OrderID = orderModel.ID
		order.Shipping.TrackingID = &tracking.ID
		order.Shipping.Tracking.ID = tracking.ID
		order.Shipping.Tracking.OrderID = orderModel.ID
		for i := range items {
			order.Items[i].ID = items[i].ID
			order.Items[i].OrderID = orderModel.ID
		}

		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindByID loads an order with its items
func (r *GormCheckoutRepository) FindByID(ctx context.Context, id int64) (*checkout.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer lists a customer's orders, newest first
func (r *GormCheckoutRepository) FindByCustomer(ctx context.Context, customerID int64) ([]checkout.Order, error) {
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]checkout.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// Ensure GormCheckoutRepository implements checkout.Repository
var _ checkout.Repository = (*GormCheckoutRepository)(nil)

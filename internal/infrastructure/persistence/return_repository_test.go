package persistence

import (
	"context"
	"testing"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/domain/returns"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func placeTestOrder(t *testing.T, db *gorm.DB, customerID int64) *checkout.Order {
	t.Helper()

	p1 := seedProduct(t, db, "Widget", 20)
	order := buildTestOrder(t, customerID, []checkout.Line{
		{ProductID: p1, UnitPrice: decimal.NewFromInt(20), Quantity: 1},
	}, nil)
	require.NoError(t, NewGormCheckoutRepository(db).PlaceOrder(context.Background(), order))
	return order
}

func TestGormReturnRepository_ResolvePayment(t *testing.T) {
	t.Run("resolves payment through the order", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormReturnRepository(db)
		order := placeTestOrder(t, db, 7)

		paymentID, err := repo.ResolvePayment(context.Background(), order.Items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, *order.PaymentID, paymentID)
	})

	t.Run("missing order item is not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormReturnRepository(db)

		_, err := repo.ResolvePayment(context.Background(), 9999)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("order without payment link is rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormReturnRepository(db)
		order := placeTestOrder(t, db, 7)

		require.NoError(t, db.Table("orders").
			Where("id = ?", order.ID).
			Update("payment_id", nil).Error)

		_, err := repo.ResolvePayment(context.Background(), order.Items[0].ID)
		assert.Equal(t, returns.ErrNoPayment, err)
	})
}

func TestGormReturnRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormReturnRepository(db)
	order := placeTestOrder(t, db, 7)

	req := returns.NewRequest(order.Items[0].ID, *order.PaymentID, "damaged on arrival")
	require.NoError(t, repo.Create(context.Background(), req))
	assert.NotZero(t, req.ID)

	listed, err := repo.FindByCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, returns.StatusPending, listed[0].Status)
	assert.Equal(t, "damaged on arrival", listed[0].Reason)

	// Another customer sees nothing
	other, err := repo.FindByCustomer(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

package checkout

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID int64, price float64, qty int) Line {
	return Line{
		ProductID: productID,
		UnitPrice: decimal.NewFromFloat(price),
		Quantity:  qty,
	}
}

func TestNewOrder_Totals(t *testing.T) {
	lines := []Line{
		line(1, 20, 2),
		line(2, 15, 1),
	}

	order, err := NewOrder(7, lines, nil, "1 Main St", PaymentMethodCOD, "")
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(55)),
		"total should be 55, got %s", order.TotalAmount)
	assert.True(t, order.TotalTax.IsZero())
	assert.Empty(t, order.TaxCharges)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromInt(40)))
	assert.True(t, order.Items[1].Subtotal.Equal(decimal.NewFromInt(15)))
}

func TestNewOrder_TaxFromRates(t *testing.T) {
	lines := []Line{line(1, 100, 1)}
	rates := map[int64]decimal.Decimal{
		1: decimal.NewFromInt(5),
	}

	order, err := NewOrder(7, lines, rates, "1 Main St", PaymentMethodCard, "txn_abc")
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(105)),
		"total should include tax, got %s", order.TotalAmount)
	assert.True(t, order.TotalTax.Equal(decimal.NewFromInt(5)),
		"tax should be 5, got %s", order.TotalTax)
	require.Len(t, order.TaxCharges, 1)
	assert.Equal(t, int64(1), order.TaxCharges[0].ProductID)
	assert.True(t, order.TaxCharges[0].Amount.Equal(decimal.NewFromInt(5)))
}

func TestNewOrder_TaxOnlyForRatedProducts(t *testing.T) {
	lines := []Line{
		line(1, 100, 1),
		line(2, 50, 2),
	}
	rates := map[int64]decimal.Decimal{
		2: decimal.NewFromInt(10),
	}

	order, err := NewOrder(7, lines, rates, "1 Main St", PaymentMethodCard, "txn_abc")
	require.NoError(t, err)

	// only product 2 is taxed: 100 * 10% = 10
	assert.True(t, order.TotalTax.Equal(decimal.NewFromInt(10)))
	require.Len(t, order.TaxCharges, 1)
	assert.Equal(t, int64(2), order.TaxCharges[0].ProductID)
}

func TestNewOrder_EmptyCart(t *testing.T) {
	_, err := NewOrder(7, nil, nil, "1 Main St", PaymentMethodCOD, "")
	assert.True(t, errors.Is(err, shared.ErrEmptyCart))
}

func TestNewOrder_RejectsBadLines(t *testing.T) {
	_, err := NewOrder(7, []Line{line(1, 20, 0)}, nil, "1 Main St", PaymentMethodCOD, "")
	require.Error(t, err)

	_, err = NewOrder(7, []Line{line(1, -5, 1)}, nil, "1 Main St", PaymentMethodCOD, "")
	require.Error(t, err)

	_, err = NewOrder(7, []Line{line(1, 0, 1)}, nil, "1 Main St", PaymentMethodCOD, "")
	require.Error(t, err, "zero-price lines are rejected, same as negative")

	_, err = NewOrder(7, []Line{line(1, 20, 1)}, nil, "", PaymentMethodCOD, "")
	require.Error(t, err)
}

func TestNewOrder_InitialState(t *testing.T) {
	order, err := NewOrder(7, []Line{line(1, 20, 1)}, nil, "1 Main St", PaymentMethodCard, "")
	require.NoError(t, err)

	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Equal(t, ShippingStatusProcessing, order.Shipping.Status)
	assert.Equal(t, TrackingStatusInTransit, order.Shipping.Tracking.Status)
	assert.Equal(t, PaymentStatusPending, order.Payment.Status)
	assert.Equal(t, "Credit Card", order.Payment.Method)
	assert.Nil(t, order.PaymentID)
	assert.Nil(t, order.Shipping.TrackingID)

	eta := order.Shipping.Tracking.EstimatedDelivery
	assert.WithinDuration(t, time.Now().Add(TrackingLeadTime), eta, time.Minute)
}

func TestNewOrder_DefaultTransactionID(t *testing.T) {
	order, err := NewOrder(7, []Line{line(1, 20, 1)}, nil, "1 Main St", PaymentMethodCOD, "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Payment.TransactionID, "txn_"))

	order, err = NewOrder(7, []Line{line(1, 20, 1)}, nil, "1 Main St", PaymentMethodCOD, "txn_custom")
	require.NoError(t, err)
	assert.Equal(t, "txn_custom", order.Payment.TransactionID)
}

func TestPaymentMethodLabel(t *testing.T) {
	tests := []struct {
		method string
		label  string
	}{
		{PaymentMethodCard, "Credit Card"},
		{PaymentMethodCOD, "COD"},
		{"bank_transfer", "bank_transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.label, PaymentMethodLabel(tt.method))
		})
	}
}

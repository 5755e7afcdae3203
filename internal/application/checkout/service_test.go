package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	err    error
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEvents() []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, len(m.events))
	copy(result, m.events)
	return result
}

// MockCheckoutRepository is a mock implementation of checkout.Repository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) PlaceOrder(ctx context.Context, order *checkout.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockCheckoutRepository) FindByID(ctx context.Context, id int64) (*checkout.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Order), args.Error(1)
}

func (m *MockCheckoutRepository) FindByCustomer(ctx context.Context, customerID int64) ([]checkout.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]checkout.Order), args.Error(1)
}

// MockTaxRepository is a mock implementation of checkout.TaxRepository
type MockTaxRepository struct {
	mock.Mock
}

func (m *MockTaxRepository) RatesForProducts(ctx context.Context, productIDs []int64) (map[int64]decimal.Decimal, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]decimal.Decimal), args.Error(1)
}

func newTestService(repo *MockCheckoutRepository, taxes *MockTaxRepository) (*Service, *MockEventPublisher) {
	svc := NewService(repo, taxes, zap.NewNop())
	publisher := &MockEventPublisher{}
	svc.SetEventPublisher(publisher)
	return svc, publisher
}

func codRequest() CheckoutRequest {
	return CheckoutRequest{
		Items: []CheckoutItemRequest{
			{ProductID: 5, Quantity: 2, Price: decimal.NewFromInt(20)},
		},
		Address:       "1 Main St",
		PaymentMethod: "cod",
	}
}

func TestService_Checkout_Success(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, publisher := newTestService(repo, taxes)

	taxes.On("RatesForProducts", mock.Anything, []int64{5}).
		Return(map[int64]decimal.Decimal{}, nil)
	repo.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*checkout.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*checkout.Order)
			order.ID = 101
			order.Shipping.Tracking.ID = 301
		}).Return(nil)

	result, err := svc.Checkout(context.Background(), 7, codRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), result.OrderID)
	assert.Equal(t, int64(301), result.TrackingNumber)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(40)))
	assert.True(t, result.TotalTax.IsZero())
	assert.Equal(t, int64(4), result.LoyaltyPoints)

	events := publisher.GetEvents()
	require.Len(t, events, 1)
	placed, ok := events[0].(*checkout.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(101), placed.OrderID)
	assert.Equal(t, int64(7), placed.CustomerID)
	assert.Equal(t, int64(4), placed.PointsEarned)

	repo.AssertExpectations(t)
	taxes.AssertExpectations(t)
}

func TestService_Checkout_TaxedLine(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, _ := newTestService(repo, taxes)

	taxes.On("RatesForProducts", mock.Anything, []int64{7}).
		Return(map[int64]decimal.Decimal{7: decimal.NewFromInt(5)}, nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil)

	req := CheckoutRequest{
		Items: []CheckoutItemRequest{
			{ProductID: 7, Quantity: 1, Price: decimal.NewFromInt(100)},
		},
		Address:       "1 Main St",
		PaymentMethod: "card",
	}

	result, err := svc.Checkout(context.Background(), 7, req)
	require.NoError(t, err)

	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(5)))
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromInt(105)))
	assert.Equal(t, int64(10), result.LoyaltyPoints)
}

func TestService_Checkout_EmptyCart(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, publisher := newTestService(repo, taxes)

	req := CheckoutRequest{Address: "1 Main St", PaymentMethod: "cod"}
	_, err := svc.Checkout(context.Background(), 7, req)
	assert.ErrorIs(t, err, shared.ErrEmptyCart)

	taxes.AssertNotCalled(t, "RatesForProducts", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.GetEvents())
}

func TestService_Checkout_RepositoryFailure(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, publisher := newTestService(repo, taxes)

	taxes.On("RatesForProducts", mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(errors.New("create payment: connection reset"))

	_, err := svc.Checkout(context.Background(), 7, codRequest())
	require.Error(t, err)
	assert.Empty(t, publisher.GetEvents(), "no event after a failed placement")
}

func TestService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc := NewService(repo, taxes, zap.NewNop())
	svc.SetEventPublisher(&MockEventPublisher{err: errors.New("bus down")})

	taxes.On("RatesForProducts", mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Checkout(context.Background(), 7, codRequest())
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestService_Checkout_NoPublisherConfigured(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc := NewService(repo, taxes, zap.NewNop())

	taxes.On("RatesForProducts", mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Checkout(context.Background(), 7, codRequest())
	require.NoError(t, err)
}

func TestService_GetOrder_OtherCustomer(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, _ := newTestService(repo, taxes)

	order, err := checkout.NewOrder(9, []checkout.Line{
		{ProductID: 1, UnitPrice: decimal.NewFromInt(10), Quantity: 1},
	}, nil, "1 Main St", "cod", "")
	require.NoError(t, err)
	order.ID = 55

	repo.On("FindByID", mock.Anything, int64(55)).Return(order, nil)

	_, err = svc.GetOrder(context.Background(), 7, 55)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_ListOrders(t *testing.T) {
	repo := new(MockCheckoutRepository)
	taxes := new(MockTaxRepository)
	svc, _ := newTestService(repo, taxes)

	first, err := checkout.NewOrder(7, []checkout.Line{
		{ProductID: 1, UnitPrice: decimal.NewFromInt(10), Quantity: 2},
	}, nil, "1 Main St", "cod", "")
	require.NoError(t, err)
	first.ID = 1

	repo.On("FindByCustomer", mock.Anything, int64(7)).
		Return([]checkout.Order{*first}, nil)

	orders, err := svc.ListOrders(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].Subtotal.Equal(decimal.NewFromInt(20)))
}

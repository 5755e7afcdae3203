package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appcheckout "github.com/ecom/backend/internal/application/checkout"
	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	placeErr error
	placed   *checkout.Order
}

func (s *stubOrderRepo) PlaceOrder(ctx context.Context, order *checkout.Order) error {
	if s.placeErr != nil {
		return s.placeErr
	}
	order.ID = 101
	order.Shipping.Tracking.ID = 301
	s.placed = order
	return nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id int64) (*checkout.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) FindByCustomer(ctx context.Context, customerID int64) ([]checkout.Order, error) {
	return nil, nil
}

type stubTaxRepo struct {
	rates map[int64]decimal.Decimal
}

func (s *stubTaxRepo) RatesForProducts(ctx context.Context, productIDs []int64) (map[int64]decimal.Decimal, error) {
	if s.rates == nil {
		return map[int64]decimal.Decimal{}, nil
	}
	return s.rates, nil
}

// authAs fakes the auth middleware for handler tests
func authAs(customerID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTCustomerIDKey, customerID)
		c.Next()
	}
}

func newCheckoutTestRouter(repo *stubOrderRepo, taxes *stubTaxRepo, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := appcheckout.NewService(repo, taxes, zap.NewNop())
	h := NewCheckoutHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	if authed {
		api.Use(authAs(7))
	}
	h.RegisterRoutes(api)
	return r
}

func checkoutBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(gin.H{
		"items": []gin.H{
			{"product_id": 5, "quantity": 2, "price": "20"},
		},
		"address":        "1 Main St",
		"payment_method": "cod",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCheckoutHandler_Success(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newCheckoutTestRouter(repo, &stubTaxRepo{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool                        `json:"success"`
		Data    appcheckout.CheckoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(301), resp.Data.TrackingNumber)
	assert.Equal(t, int64(4), resp.Data.LoyaltyPoints)
	assert.True(t, resp.Data.TotalAmount.Equal(decimal.NewFromInt(40)))

	require.NotNil(t, repo.placed)
	assert.Equal(t, int64(7), repo.placed.CustomerID)
}

func TestCheckoutHandler_EmptyItems(t *testing.T) {
	r := newCheckoutTestRouter(&stubOrderRepo{}, &stubTaxRepo{}, true)

	body, err := json.Marshal(gin.H{
		"items":          []gin.H{},
		"address":        "1 Main St",
		"payment_method": "cod",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler_Unauthenticated(t *testing.T) {
	r := newCheckoutTestRouter(&stubOrderRepo{}, &stubTaxRepo{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutHandler_PersistenceFailure(t *testing.T) {
	repo := &stubOrderRepo{placeErr: assert.AnError}
	r := newCheckoutTestRouter(repo, &stubTaxRepo{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", checkoutBody(t))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
	assert.NotContains(t, w.Body.String(), "assert.AnError", "internal detail must not leak")
}

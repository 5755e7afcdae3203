// Package integration contains end-to-end tests for the store backend.
// The suite runs against an in-memory sqlite database with the real
// repositories, services, event bus and HTTP stack wired together the
// same way the server wires them.
package integration

import (
	"context"
	"testing"
	"time"

	cartapp "github.com/ecom/backend/internal/application/cart"
	catalogapp "github.com/ecom/backend/internal/application/catalog"
	checkoutapp "github.com/ecom/backend/internal/application/checkout"
	identityapp "github.com/ecom/backend/internal/application/identity"
	loyaltyapp "github.com/ecom/backend/internal/application/loyalty"
	returnsapp "github.com/ecom/backend/internal/application/returns"
	"github.com/ecom/backend/internal/infrastructure/auth"
	"github.com/ecom/backend/internal/infrastructure/config"
	"github.com/ecom/backend/internal/infrastructure/event"
	"github.com/ecom/backend/internal/infrastructure/persistence"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/ecom/backend/internal/interfaces/http/handler"
	"github.com/ecom/backend/internal/interfaces/http/middleware"
	"github.com/ecom/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStack holds the fully wired application for a test
type testStack struct {
	DB       *gorm.DB
	Engine   *gin.Engine
	Bus      *event.InMemoryEventBus
	Checkout *checkoutapp.Service
	Loyalty  *loyaltyapp.Service
	Cart     *cartapp.Service
	Identity *identityapp.Service
	Returns  *returnsapp.Service
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.CustomerModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.CartItemModel{},
		&models.WishlistItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ShipmentModel{},
		&models.TrackingModel{},
		&models.PaymentModel{},
		&models.TaxRecordModel{},
		&models.TaxChargeModel{},
		&models.PointsBalanceModel{},
		&models.PointsHistoryModel{},
		&models.ReturnRequestModel{},
	))

	return db
}

// newTestStack wires repositories, services, the event bus and the HTTP
// layer over a fresh database. The event bus is stopped via t.Cleanup.
func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db := newTestDB(t)
	log := zap.NewNop()

	checkoutRepo := persistence.NewGormCheckoutRepository(db)
	taxRepo := persistence.NewGormTaxRepository(db)
	loyaltyRepo := persistence.NewGormLoyaltyRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	wishlistRepo := persistence.NewGormWishlistRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	returnRepo := persistence.NewGormReturnRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "integration-test-secret-0123456789",
		TokenExpiration: time.Hour,
		Issuer:          "ecom-test",
	})

	checkoutService := checkoutapp.NewService(checkoutRepo, taxRepo, log)
	loyaltyService := loyaltyapp.NewService(loyaltyRepo)
	cartService := cartapp.NewService(cartRepo, productRepo)
	wishlistService := cartapp.NewWishlistService(wishlistRepo, productRepo)
	identityService := identityapp.NewService(customerRepo, jwtService, auth.NoopTokenBlacklist{}, log)
	returnsService := returnsapp.NewService(returnRepo, log)
	catalogService := catalogapp.NewService(productRepo)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(loyaltyapp.NewOrderPlacedHandler(loyaltyService, log))
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() {
		_ = bus.Stop(context.Background())
	})
	checkoutService.SetEventPublisher(bus)

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
		},
		SkipPathPrefixes: []string{
			"/api/v1/products",
		},
		Logger: log,
	}))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewAuthHandler(identityService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewWishlistHandler(wishlistService)).
		Register(handler.NewLoyaltyHandler(loyaltyService)).
		Register(handler.NewReturnsHandler(returnsService)).
		Register(handler.NewCatalogHandler(catalogService))
	r.Setup()

	return &testStack{
		DB:       db,
		Engine:   engine,
		Bus:      bus,
		Checkout: checkoutService,
		Loyalty:  loyaltyService,
		Cart:     cartService,
		Identity: identityService,
		Returns:  returnsService,
	}
}

// seedProduct inserts a product, optionally with a tax rate, and
// returns its ID
func (s *testStack) seedProduct(t *testing.T, name string, price float64, taxRate float64) int64 {
	t.Helper()

	product := models.ProductModel{
		Name:  name,
		Price: decimal.NewFromFloat(price),
	}
	require.NoError(t, s.DB.Create(&product).Error)

	if taxRate > 0 {
		require.NoError(t, s.DB.Create(&models.TaxRecordModel{
			ProductID: product.ID,
			TaxType:   "VAT",
			Rate:      decimal.NewFromFloat(taxRate),
		}).Error)
	}
	return product.ID
}

// seedCustomer registers an account through the identity service so
// the password hash is real, and returns the customer ID
func (s *testStack) seedCustomer(t *testing.T, email string) int64 {
	t.Helper()

	resp, err := s.Identity.Register(context.Background(), identityapp.RegisterRequest{
		Name:     "Test Customer",
		Email:    email,
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	return resp.ID
}

func (s *testStack) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, s.DB.Model(model).Count(&count).Error)
	return count
}

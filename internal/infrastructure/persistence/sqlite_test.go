package persistence

import (
	"testing"

	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// sqlite is close enough to postgres for transactional behavior, which
// is what these tests care about.
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

// seedProduct inserts a product and returns its ID
func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) int64 {
	t.Helper()

	product := models.ProductModel{
		Name:  name,
		Price: decimalFromFloat(price),
	}
	require.NoError(t, db.Create(&product).Error)
	return product.ID
}

// seedCartItem inserts a cart line
func seedCartItem(t *testing.T, db *gorm.DB, customerID, productID int64, quantity int) {
	t.Helper()

	require.NoError(t, db.Create(&models.CartItemModel{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}).Error)
}

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

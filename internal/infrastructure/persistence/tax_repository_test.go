package persistence

import (
	"context"
	"testing"

	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTaxRepository_RatesForProducts(t *testing.T) {
	t.Run("returns configured rates", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormTaxRepository(db)

		require.NoError(t, db.Create(&models.TaxRecordModel{
			ProductID: 1,
			TaxType:   "VAT",
			Rate:      decimal.NewFromInt(5),
		}).Error)

		rates, err := repo.RatesForProducts(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, rates, 1)
		assert.True(t, rates[1].Equal(decimal.NewFromInt(5)))
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormTaxRepository(db)

		rates, err := repo.RatesForProducts(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, rates)
	})

	t.Run("tolerates a missing taxes table", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormTaxRepository(db)

		require.NoError(t, db.Migrator().DropTable(&models.TaxRecordModel{}))

		rates, err := repo.RatesForProducts(context.Background(), []int64{1})
		require.NoError(t, err)
		assert.Empty(t, rates)
	})
}

func TestIsMissingTableError(t *testing.T) {
	assert.False(t, isMissingTableError(nil))
	assert.False(t, isMissingTableError(assert.AnError))
}

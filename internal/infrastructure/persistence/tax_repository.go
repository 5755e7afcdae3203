package persistence

import (
	"context"
	"strings"

	"github.com/ecom/backend/internal/domain/checkout"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTaxRepository implements checkout.TaxRepository using GORM
type GormTaxRepository struct {
	db *gorm.DB
}

// NewGormTaxRepository creates a new GormTaxRepository
func NewGormTaxRepository(db *gorm.DB) *GormTaxRepository {
	return &GormTaxRepository{db: db}
}

// RatesForProducts returns configured tax rates keyed by product ID.
// Deployments that never ran the tax migration have no taxes table at
// all; that case is treated as "no taxes configured", not an error.
func (r *GormTaxRepository) RatesForProducts(ctx context.Context, productIDs []int64) (map[int64]decimal.Decimal, error) {
	rates := make(map[int64]decimal.Decimal, len(productIDs))
	if len(productIDs) == 0 {
		return rates, nil
	}

	var rows []models.TaxRecordModel
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&rows).Error
	if err != nil {
		if isMissingTableError(err) {
			return rates, nil
		}
		return nil, err
	}

	for _, row := range rows {
		rates[row.ProductID] = row.Rate
	}
	return rates, nil
}

// isMissingTableError detects "table does not exist" errors from both
// postgres (SQLSTATE 42P01) and sqlite (used in tests).
func isMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 42P01") ||
		strings.Contains(msg, "no such table")
}

// Ensure GormTaxRepository implements checkout.TaxRepository
var _ checkout.TaxRepository = (*GormTaxRepository)(nil)

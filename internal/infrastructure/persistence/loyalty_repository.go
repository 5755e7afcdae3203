package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/ecom/backend/internal/domain/loyalty"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLoyaltyRepository implements loyalty.Repository using GORM
type GormLoyaltyRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyRepository creates a new GormLoyaltyRepository
func NewGormLoyaltyRepository(db *gorm.DB) *GormLoyaltyRepository {
	return &GormLoyaltyRepository{db: db}
}

// Accrue adds points to the customer's balance and records a history
// entry. Both writes share a transaction so balance and history cannot
// disagree.
func (r *GormLoyaltyRepository) Accrue(ctx context.Context, customerID, points int64, description string) error {
	if points <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Accrued points must be positive")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var balance models.PointsBalanceModel
		err := tx.Where("customer_id = ?", customerID).First(&balance).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			balance = models.PointsBalanceModel{
				CustomerID: customerID,
				Points:     points,
				EarnedDate: now,
			}
			if err := tx.Create(&balance).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			err = tx.Model(&models.PointsBalanceModel{}).
				Where("customer_id = ?", customerID).
				Updates(map[string]interface{}{
					"points":      gorm.Expr("points + ?", points),
					"earned_date": now,
				}).Error
			if err != nil {
				return err
			}
		}

		return tx.Create(&models.PointsHistoryModel{
			CustomerID:  customerID,
			Points:      points,
			Description: description,
			Date:        now,
		}).Error
	})
}

// Redeem subtracts points from the customer's balance and records a
// negative history entry. The balance check and the subtraction run in
// the same transaction, so two concurrent redemptions cannot both pass
// the check against the same balance.
func (r *GormLoyaltyRepository) Redeem(ctx context.Context, customerID, points int64, description string) error {
	if points <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Redeemed points must be positive")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balance models.PointsBalanceModel
		err := tx.Where("customer_id = ?", customerID).First(&balance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrInsufficientPoints
			}
			return err
		}

		if balance.Points < points {
			return shared.ErrInsufficientPoints
		}

		// Guard against a concurrent redemption between read and write
		result := tx.Model(&models.PointsBalanceModel{}).
			Where("customer_id = ? AND points >= ?", customerID, points).
			Update("points", gorm.Expr("points - ?", points))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrInsufficientPoints
		}

		return tx.Create(&models.PointsHistoryModel{
			CustomerID:  customerID,
			Points:      -points,
			Description: description,
			Date:        time.Now(),
		}).Error
	})
}

// Balance returns the customer's current points balance
func (r *GormLoyaltyRepository) Balance(ctx context.Context, customerID int64) (int64, error) {
	var balance models.PointsBalanceModel
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balance.Points, nil
}

// History lists the customer's points entries, newest first
func (r *GormLoyaltyRepository) History(ctx context.Context, customerID int64) ([]loyalty.PointsEntry, error) {
	var rows []models.PointsHistoryModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]loyalty.PointsEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries, nil
}

// Ensure GormLoyaltyRepository implements loyalty.Repository
var _ loyalty.Repository = (*GormLoyaltyRepository)(nil)

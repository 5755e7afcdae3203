package models

import (
	"time"

	"github.com/ecom/backend/internal/domain/loyalty"
)

// PointsBalanceModel is the persistence model for loyalty balances.
// One row per customer.
type PointsBalanceModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"not null;uniqueIndex"`
	Points     int64     `gorm:"not null;default:0"`
	EarnedDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PointsBalanceModel) TableName() string {
	return "loyalty_points"
}

// ToDomain converts the persistence model to a domain PointsBalance
func (m *PointsBalanceModel) ToDomain() loyalty.PointsBalance {
	return loyalty.PointsBalance{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Points:     m.Points,
		EarnedDate: m.EarnedDate,
	}
}

// PointsHistoryModel is the persistence model for points history lines
type PointsHistoryModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64     `gorm:"not null;index"`
	Points      int64     `gorm:"not null"`
	Description string    `gorm:"type:varchar(200);not null"`
	Date        time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PointsHistoryModel) TableName() string {
	return "points_history"
}

// ToDomain converts the persistence model to a domain PointsEntry
func (m *PointsHistoryModel) ToDomain() loyalty.PointsEntry {
	return loyalty.PointsEntry{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Points:      m.Points,
		Description: m.Description,
		Date:        m.Date,
	}
}

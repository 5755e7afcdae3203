package loyalty

import (
	"time"

	"github.com/ecom/backend/internal/domain/loyalty"
	"github.com/shopspring/decimal"
)

// RedeemRequest is the payload for redeeming points
type RedeemRequest struct {
	Points int64 `json:"points" binding:"required,gt=0"`
}

// RedeemResult is returned after a successful redemption
type RedeemResult struct {
	Success  bool            `json:"success"`
	Discount decimal.Decimal `json:"discount"`
}

// PointsEntryResponse is a single history line in API responses
type PointsEntryResponse struct {
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// PointsResponse reports a customer's balance and history
type PointsResponse struct {
	Points  int64                 `json:"points"`
	History []PointsEntryResponse `json:"history"`
}

func toPointsResponse(balance int64, history []loyalty.PointsEntry) *PointsResponse {
	resp := &PointsResponse{
		Points:  balance,
		History: make([]PointsEntryResponse, 0, len(history)),
	}
	for _, entry := range history {
		resp.History = append(resp.History, PointsEntryResponse{
			Points:      entry.Points,
			Description: entry.Description,
			Date:        entry.Date,
		})
	}
	return resp
}

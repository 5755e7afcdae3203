package loyalty

import (
	"context"

	"github.com/ecom/backend/internal/domain/loyalty"
)

// Service handles loyalty points accrual, redemption and reporting
type Service struct {
	repo loyalty.Repository
}

// NewService creates a new loyalty service
func NewService(repo loyalty.Repository) *Service {
	return &Service{repo: repo}
}

// Accrue credits points to a customer's balance with a history entry
func (s *Service) Accrue(ctx context.Context, customerID, points int64) error {
	if points <= 0 {
		return nil
	}
	return s.repo.Accrue(ctx, customerID, points, loyalty.DescriptionEarned)
}

// Redeem spends points for a discount. The discount is a fixed tier
// lookup: non-tier amounts redeem for zero discount but still deduct
// the points. Insufficient balance rejects the redemption untouched.
func (s *Service) Redeem(ctx context.Context, customerID int64, req RedeemRequest) (*RedeemResult, error) {
	if err := s.repo.Redeem(ctx, customerID, req.Points, loyalty.DescriptionRedeemed); err != nil {
		return nil, err
	}
	return &RedeemResult{
		Success:  true,
		Discount: loyalty.RedemptionDiscount(req.Points),
	}, nil
}

// Points returns the customer's balance and history
func (s *Service) Points(ctx context.Context, customerID int64) (*PointsResponse, error) {
	balance, err := s.repo.Balance(ctx, customerID)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.History(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toPointsResponse(balance, history), nil
}

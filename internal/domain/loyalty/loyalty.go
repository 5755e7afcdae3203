package loyalty

import (
	"time"

	"github.com/shopspring/decimal"
)

// PointsBalance is a customer's current loyalty points balance
type PointsBalance struct {
	ID         int64
	CustomerID int64
	Points     int64
	EarnedDate time.Time
}

// PointsEntry is a single line in a customer's points history.
// Points is signed: positive for accrual, negative for redemption.
type PointsEntry struct {
	ID          int64
	CustomerID  int64
	Points      int64
	Description string
	Date        time.Time
}

// History entry descriptions
const (
	DescriptionEarned   = "Points earned from order"
	DescriptionRedeemed = "Points redeemed for discount"
)

// PointsForAmount returns the points earned for an order total: one
// point per ten currency units, rounded down.
func PointsForAmount(total decimal.Decimal) int64 {
	if total.IsNegative() {
		return 0
	}
	return total.Div(decimal.NewFromInt(10)).Floor().IntPart()
}

// Fixed redemption tiers. Only exact tier values convert to a
// discount; anything else redeems for nothing.
var redemptionTiers = map[int64]decimal.Decimal{
	100:  decimal.NewFromInt(1),
	500:  decimal.NewFromInt(5),
	1000: decimal.NewFromInt(12),
}

// RedemptionDiscount returns the discount value for redeeming the
// given number of points. Non-tier amounts return zero.
func RedemptionDiscount(points int64) decimal.Decimal {
	if discount, ok := redemptionTiers[points]; ok {
		return discount
	}
	return decimal.Zero
}

// IsRedemptionTier reports whether points is an exact redemption tier
func IsRedemptionTier(points int64) bool {
	_, ok := redemptionTiers[points]
	return ok
}

package loyalty

import "context"

// Repository persists loyalty balances and history.
//
// Accrue and Redeem each update the balance and append the matching
// history entry inside one transaction, so the two tables cannot
// drift apart.
type Repository interface {
	// Accrue adds points to the customer's balance, creating the
	// balance row if it does not exist, and records a history entry.
	Accrue(ctx context.Context, customerID, points int64, description string) error

	// Redeem subtracts points from the customer's balance and records
	// a negative history entry. Returns shared.ErrInsufficientPoints
	// when the balance does not cover the redemption.
	Redeem(ctx context.Context, customerID, points int64, description string) error

	// Balance returns the customer's current points balance; customers
	// with no balance row have zero points.
	Balance(ctx context.Context, customerID int64) (int64, error)

	// History lists the customer's points entries, newest first
	History(ctx context.Context, customerID int64) ([]PointsEntry, error)
}

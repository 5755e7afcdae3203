package checkout

import "github.com/shopspring/decimal"

// TaxRecord is a configured tax rate for a product. Rate is a
// percentage, e.g. 5 means five percent.
type TaxRecord struct {
	ID        int64
	ProductID int64
	TaxType   string
	Rate      decimal.Decimal
}

// TaxCharge is the per-product tax snapshot stored with an order,
// frozen at placement time so later rate changes do not affect it.
type TaxCharge struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Rate      decimal.Decimal
	Amount    decimal.Decimal
}

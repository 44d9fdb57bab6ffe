package rental

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental order statuses
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusReturned  = "Returned"
	StatusCancelled = "Cancelled"
)

// RentPrice total rent for a period, days × per-day rate
func (p *RentalProduct) RentPrice(start, end time.Time) decimal.Decimal {
	days := int64(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return p.RentPricePerDay.Mul(decimal.NewFromInt(days))
}

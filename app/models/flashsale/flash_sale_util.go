package flashsale

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType how the discount value is applied
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Flash sale order statuses
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var oneHundred = decimal.NewFromInt(100)

// SalePrice the discounted unit price, truncated to whole currency units
func (p *FlashSaleProduct) SalePrice() decimal.Decimal {
	var price decimal.Decimal
	if p.DiscountType == DiscountPercent {
		price = p.OriginalPrice.Mul(decimal.NewFromInt(1).Sub(p.DiscountValue.Div(oneHundred)))
	} else {
		price = p.OriginalPrice.Sub(p.DiscountValue)
	}
	return price.Truncate(0)
}

// IsRunning reports whether the sale window covers the given instant
func (p *FlashSaleProduct) IsRunning(now time.Time) bool {
	return p.Available && !now.Before(p.StartTime) && !now.After(p.EndTime)
}

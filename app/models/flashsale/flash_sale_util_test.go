package flashsale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalePricePercent(t *testing.T) {
	p := FlashSaleProduct{
		DiscountType:  DiscountPercent,
		OriginalPrice: decimal.RequireFromString("1999.99"),
		DiscountValue: decimal.RequireFromString("10"),
	}
	// 1799.991 truncated to whole units
	assert.True(t, p.SalePrice().Equal(decimal.RequireFromString("1799")),
		"sale price = %s", p.SalePrice())
}

func TestSalePriceFixed(t *testing.T) {
	p := FlashSaleProduct{
		DiscountType:  DiscountFixed,
		OriginalPrice: decimal.RequireFromString("500.00"),
		DiscountValue: decimal.RequireFromString("50.50"),
	}
	assert.True(t, p.SalePrice().Equal(decimal.RequireFromString("449")),
		"sale price = %s", p.SalePrice())
}

func TestSalePriceFullDiscount(t *testing.T) {
	p := FlashSaleProduct{
		DiscountType:  DiscountPercent,
		OriginalPrice: decimal.RequireFromString("100.00"),
		DiscountValue: decimal.RequireFromString("100"),
	}
	assert.True(t, p.SalePrice().IsZero())
}

func TestIsRunning(t *testing.T) {
	now := time.Now()
	p := FlashSaleProduct{
		Available: true,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
	assert.True(t, p.IsRunning(now))
	assert.False(t, p.IsRunning(now.Add(-2*time.Hour)), "before the window")
	assert.False(t, p.IsRunning(now.Add(2*time.Hour)), "after the window")

	p.Available = false
	assert.False(t, p.IsRunning(now), "unavailable product")
}

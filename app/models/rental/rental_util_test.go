package rental

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRentPrice(t *testing.T) {
	p := RentalProduct{RentPricePerDay: decimal.RequireFromString("100.00")}
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, p.RentPrice(start, start.AddDate(0, 0, 3)).
		Equal(decimal.RequireFromString("300.00")))

	// partial days count as full elapsed days only
	assert.True(t, p.RentPrice(start, start.Add(60*time.Hour)).
		Equal(decimal.RequireFromString("200.00")))

	// a reversed period prices to zero rather than negative
	assert.True(t, p.RentPrice(start, start.AddDate(0, 0, -2)).IsZero())
}
